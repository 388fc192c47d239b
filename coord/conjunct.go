package coord

import (
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/order"
)

// childStash records a conjunct child's attributes and original
// incident edges so splitConjuncts can restore it.
type childStash struct {
	id    string
	attrs graph.VertexAttrs
	edges []graph.Edge
}

// conjunctStash records one container's merged-away children and the
// stand-in edges mergeConjuncts added in their place.
type conjunctStash struct {
	container  string
	children   []childStash
	redirected []graph.Edge
}

// mergeConjuncts collapses every conjunct cluster into its container
// (spec 4.F.1): the container's width becomes the sum of its children's
// widths plus (k-1)*nodesep, every out-edge it ends up with other than
// the single original conjunct-target edge is flagged IsConflicted (so
// alignment never tries to align through a fan of redirected stand-ins),
// and m's matrix rows are rewritten so each cluster's contiguous child
// run collapses to the container at the first child's position.
func mergeConjuncts(g *graph.Graph, m order.Matrix, nodesep float64) []conjunctStash {
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

		var target string
		if outs := g.OutEdges(id); len(outs) == 1 {
			target = outs[0].To
		}

		sibling := make(map[string]bool, len(children))
		for _, c := range children {
			sibling[c] = true
		}

		width := -nodesep
		st := conjunctStash{container: id}
		for _, ch := range children {
			cv := g.Vertex(ch)
			width += cv.Attrs.Width + nodesep
			cst := childStash{id: ch, attrs: cv.Attrs}
			for _, e := range g.IncidentEdges(ch) {
				cst.edges = append(cst.edges, *e)
				_ = g.RemoveEdge(e.From, e.To, e.Name)

				other := e.To
				if e.To == ch {
					other = e.From
				}
				if sibling[other] {
					continue
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
		v.Attrs.Width = width
		out = append(out, st)

		for _, e := range g.OutEdges(id) {
			if e.To != target {
				e.IsConflicted = true
			}
		}

		replaceRunWithContainer(m, children, id)
	}

	return out
}

// replaceRunWithContainer collapses children's contiguous run in every
// matrix row into a single container entry at the run's position.
func replaceRunWithContainer(m order.Matrix, children []string, container string) {
	set := make(map[string]bool, len(children))
	for _, c := range children {
		set[c] = true
	}
	for r, row := range m {
		placed := false
		newRow := make([]string, 0, len(row))
		for _, id := range row {
			if set[id] {
				if !placed {
					newRow = append(newRow, container)
					placed = true
				}

				continue
			}
			newRow = append(newRow, id)
		}
		if placed {
			m[r] = newRow
		}
	}
}

// splitConjuncts restores each container's children, laid out
// left-to-right from the container's final left edge, spaced by their
// widths and nodesep (spec 4.F.5).
func splitConjuncts(g *graph.Graph, stashes []conjunctStash, nodesep float64) {
	for _, st := range stashes {
		for _, re := range st.redirected {
			_ = g.RemoveEdge(re.From, re.To, re.Name)
		}

		container := g.Vertex(st.container)
		x := container.Layout.X - container.Attrs.Width/2
		for _, cst := range st.children {
			_ = g.AddVertex(cst.id)
			v := g.Vertex(cst.id)
			v.Attrs = cst.attrs
			v.Layout.Y = container.Layout.Y
			v.Layout.X = x + v.Attrs.Width/2
			x += v.Attrs.Width + nodesep

			for _, e := range cst.edges {
				_, _ = g.AddEdge(e.From, e.To, e.Name, e.Attrs)
			}
			_ = g.SetParent(cst.id, st.container)
		}
	}
}
