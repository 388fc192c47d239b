package layer

import "github.com/katalvlaran/arglayout/graph"

// childStash records a conjunct child's attributes and original
// incident edges so mergeConjuncts's redirection can be undone.
type childStash struct {
	id    string
	attrs graph.VertexAttrs
	edges []graph.Edge
}

// conjunctStash records one container's merged-away children and the
// stand-in edges mergeConjuncts added onto the container in their
// place, so splitConjuncts can remove exactly those before restoring
// the children's original edges.
type conjunctStash struct {
	container  string
	children   []childStash
	redirected []graph.Edge
}

// mergeConjuncts collapses every conjunct cluster into its container
// vertex (spec 4.D.1): each child's incident edges are redirected to
// the container and the child is removed. An edge between two
// children of the same container has no cross-rank meaning once the
// cluster occupies a single layer point, so it is dropped rather than
// redirected into a container self-loop.
func mergeConjuncts(g *graph.Graph) []conjunctStash {
	var out []conjunctStash
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsConjunctNode {
			continue
		}
		children := g.Children(id)
		if len(children) == 0 {
			continue
		}
		sibling := make(map[string]bool, len(children))
		for _, c := range children {
			sibling[c] = true
		}

		st := conjunctStash{container: id}
		for _, ch := range children {
			cst := childStash{id: ch, attrs: g.Vertex(ch).Attrs}
			for _, e := range g.IncidentEdges(ch) {
				cst.edges = append(cst.edges, *e)
				_ = g.RemoveEdge(e.From, e.To, e.Name)

				other := e.To
				if e.To == ch {
					other = e.From
				}
				if sibling[other] {
					continue // same-cluster edge; see doc comment above
				}

				from, to := e.From, e.To
				if from == ch {
					from = id
				}
				if to == ch {
					to = id
				}
				if ne, err := g.AddEdge(from, to, e.Name, e.Attrs); err == nil {
					st.redirected = append(st.redirected, *ne)
				}
			}
			st.children = append(st.children, cst)
			_ = g.RemoveVertex(ch)
		}
		out = append(out, st)
	}

	return out
}

// splitConjuncts restores each container's children at the
// container's final rank, with their original edges, keeping the
// single conjunct->target edge on the container untouched.
func splitConjuncts(g *graph.Graph, stashes []conjunctStash) {
	for _, st := range stashes {
		containerRank := g.Vertex(st.container).Rank
		for _, re := range st.redirected {
			_ = g.RemoveEdge(re.From, re.To, re.Name)
		}
		for _, cst := range st.children {
			_ = g.AddVertex(cst.id)
			v := g.Vertex(cst.id)
			v.Attrs = cst.attrs
			v.Rank = containerRank
			for _, e := range cst.edges {
				_, _ = g.AddEdge(e.From, e.To, e.Name, e.Attrs)
			}
			_ = g.SetParent(cst.id, st.container)
		}
	}
}
