package layer

import "github.com/katalvlaran/arglayout/graph"

// numberTree assigns every vertex a postorder Number and the minimum
// Number in its subtree (MinSubtreeNumber), over the forest described
// by treeParent (child->parent). A vertex with no parent and no
// children of its own still gets a trivial singleton subtree, so
// disconnected vertices never crash the range test below.
func numberTree(g *graph.Graph, treeParent map[string]string) {
	children := make(map[string][]string, len(treeParent))
	for child, parent := range treeParent {
		children[parent] = append(children[parent], child)
	}

	visited := make(map[string]bool, len(g.Vertices()))
	counter := 0
	var dfs func(v string)
	dfs = func(v string) {
		visited[v] = true
		min := counter
		first := true
		for _, c := range children[v] {
			dfs(c)
			if cn := g.Vertex(c).MinSubtreeNumber; first || cn < min {
				min, first = cn, false
			}
		}
		vert := g.Vertex(v)
		if first {
			min = counter
		}
		vert.Number = counter
		vert.MinSubtreeNumber = min
		counter++
	}
	for _, id := range g.Vertices() {
		if !visited[id] {
			dfs(id)
		}
	}
}

// deriveTreeParent rebuilds the child->parent map from the current
// IsTreeEdge flags, used after exchangeEdges swaps the tree.
func deriveTreeParent(g *graph.Graph) map[string]string {
	adj := make(map[string][]string)
	for _, e := range g.Edges() {
		if !e.IsTreeEdge {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	treeParent := make(map[string]string)
	visited := make(map[string]bool, len(g.Vertices()))
	var dfs func(v string)
	dfs = func(v string) {
		visited[v] = true
		for _, nb := range adj[v] {
			if visited[nb] {
				continue
			}
			treeParent[nb] = v
			dfs(nb)
		}
	}
	for _, id := range g.Vertices() {
		if !visited[id] {
			dfs(id)
		}
	}

	return treeParent
}

// treeChildSubtree returns, for a tree edge e, the child endpoint
// (the one further from the tree's root) and its subtree's
// [lo,hi] Number range.
func treeChildSubtree(g *graph.Graph, e *graph.Edge, treeParent map[string]string) (child string, lo, hi int) {
	child = e.To
	if treeParent[e.From] == e.To {
		child = e.From
	}
	v := g.Vertex(child)

	return child, v.MinSubtreeNumber, v.Number
}

// cutValue computes the cut value of tree edge e: the weight of the
// edges crossing the cut in e's own direction (e itself included)
// minus the weight of those crossing against it (spec 4.D.4).
func cutValue(g *graph.Graph, e *graph.Edge, treeParent map[string]string) float64 {
	child, lo, hi := treeChildSubtree(g, e, treeParent)
	tailInChild := child == e.From
	inChild := func(id string) bool {
		n := g.Vertex(id).Number

		return lo <= n && n <= hi
	}

	var total float64
	for _, f := range g.Edges() {
		fromIn, toIn := inChild(f.From), inChild(f.To)
		if fromIn == toIn {
			continue
		}
		if fromIn == tailInChild {
			total += f.Attrs.Weight
		} else {
			total -= f.Attrs.Weight
		}
	}

	return total
}

func recomputeCutValues(g *graph.Graph, treeParent map[string]string) {
	for _, e := range g.Edges() {
		if e.IsTreeEdge {
			e.CutValue = cutValue(g, e, treeParent)
		}
	}
}

// leaveEdge returns the tree edge with the most negative cut value,
// or nil if every tree edge is non-negative (the tree is optimal).
func leaveEdge(g *graph.Graph) *graph.Edge {
	var best *graph.Edge
	for _, e := range g.Edges() {
		if !e.IsTreeEdge {
			continue
		}
		if best == nil || e.CutValue < best.CutValue {
			best = e
		}
	}
	if best != nil && best.CutValue < -1e-9 {
		return best
	}

	return nil
}

// enterEdge returns the non-tree edge of minimal slack crossing the
// cut induced by removing leave, the candidate to replace it.
func enterEdge(g *graph.Graph, leave *graph.Edge, treeParent map[string]string) *graph.Edge {
	_, lo, hi := treeChildSubtree(g, leave, treeParent)
	inChild := func(id string) bool {
		n := g.Vertex(id).Number

		return lo <= n && n <= hi
	}

	var best *graph.Edge
	var bestSlack int32
	for _, e := range g.Edges() {
		if e.IsTreeEdge {
			continue
		}
		fromIn, toIn := inChild(e.From), inChild(e.To)
		if fromIn == toIn {
			continue
		}
		slack := g.Vertex(e.To).Rank - g.Vertex(e.From).Rank - doubledMinlen(e)
		if best == nil || slack < bestSlack {
			best, bestSlack = e, slack
		}
	}

	return best
}

// exchangeEdges swaps leave out of the tree for enter, shifting the
// ranks of leave's child component so enter becomes tight.
func exchangeEdges(g *graph.Graph, leave, enter *graph.Edge, treeParent map[string]string) {
	_, lo, hi := treeChildSubtree(g, leave, treeParent)
	inChild := func(id string) bool {
		n := g.Vertex(id).Number

		return lo <= n && n <= hi
	}

	slack := g.Vertex(enter.To).Rank - g.Vertex(enter.From).Rank - doubledMinlen(enter)
	delta := slack
	if !inChild(enter.From) {
		delta = -slack
	}
	for _, id := range g.Vertices() {
		if inChild(id) {
			g.Vertex(id).Rank += delta
		}
	}

	leave.IsTreeEdge = false
	enter.IsTreeEdge = true
}

// networkSimplex iterates leave/enter exchanges until the tree is
// optimal or maxLoops is exhausted. Returns true if the cap was
// reached while a negative-cut-value edge still remained.
func networkSimplex(g *graph.Graph, maxLoops int) bool {
	treeParent := buildTightTree(g)
	numberTree(g, treeParent)
	recomputeCutValues(g, treeParent)

	for i := 0; i < maxLoops; i++ {
		leave := leaveEdge(g)
		if leave == nil {
			return false
		}
		enter := enterEdge(g, leave, treeParent)
		if enter == nil {
			return false
		}
		exchangeEdges(g, leave, enter, treeParent)
		treeParent = deriveTreeParent(g)
		numberTree(g, treeParent)
		recomputeCutValues(g, treeParent)
	}

	return leaveEdge(g) != nil
}
