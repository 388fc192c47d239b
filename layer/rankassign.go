package layer

import "github.com/katalvlaran/arglayout/graph"

// doubledMinlen returns e's minimum rank span in the doubled units
// rank.Rank uses, so every comparison below stays integer arithmetic
// even though warrant sources and sinks end up at half ranks.
func doubledMinlen(e *graph.Edge) int32 { return int32(2 * e.Attrs.Minlen) }

// initialRanking assigns every vertex the longest-path rank: sources
// get 0, and every other vertex gets the maximum over its in-edges of
// (predecessor rank + minlen). Terminates because the working graph is
// acyclic (spec 4.D.2).
func initialRanking(g *graph.Graph) {
	for _, id := range g.Vertices() {
		g.Vertex(id).Rank = 0
	}
	for changed := true; changed; {
		changed = false
		for _, e := range g.Edges() {
			v, w := g.Vertex(e.From), g.Vertex(e.To)
			if want := v.Rank + doubledMinlen(e); w.Rank < want {
				w.Rank = want
				changed = true
			}
		}
	}
}

func isTight(g *graph.Graph, e *graph.Edge) bool {
	return g.Vertex(e.To).Rank-g.Vertex(e.From).Rank == doubledMinlen(e)
}

// buildTightTree grows a feasible spanning tree over the working
// graph's edge set (spec 4.D.3): tight edges are added directly, and
// when no more are tight, the minimum-slack edge crossing the tree
// boundary is added, shifting the tree's ranks so it becomes tight.
// Returns the tree as a child->parent map.
func buildTightTree(g *graph.Graph) map[string]string {
	treeParent := make(map[string]string)
	verts := g.Vertices()
	if len(verts) == 0 {
		return treeParent
	}
	for _, e := range g.Edges() {
		e.IsTreeEdge = false
	}

	inTree := map[string]bool{verts[0]: true}
	for len(inTree) < len(verts) {
		if growTightTree(g, inTree, treeParent) {
			continue
		}
		e, shift := minSlackBoundaryEdge(g, inTree)
		if e == nil {
			break // a disconnected component; left at its longest-path rank
		}
		for v := range inTree {
			g.Vertex(v).Rank += shift
		}
		e.IsTreeEdge = true
		if inTree[e.From] {
			treeParent[e.To] = e.From
			inTree[e.To] = true
		} else {
			treeParent[e.From] = e.To
			inTree[e.From] = true
		}
	}

	return treeParent
}

// growTightTree repeatedly scans for tight edges with exactly one
// endpoint in the tree, adding them until a full pass finds none.
func growTightTree(g *graph.Graph, inTree map[string]bool, treeParent map[string]string) bool {
	grew := false
	for changed := true; changed; {
		changed = false
		for _, e := range g.Edges() {
			vIn, wIn := inTree[e.From], inTree[e.To]
			if vIn == wIn || !isTight(g, e) {
				continue
			}
			e.IsTreeEdge = true
			if vIn {
				treeParent[e.To] = e.From
				inTree[e.To] = true
			} else {
				treeParent[e.From] = e.To
				inTree[e.From] = true
			}
			changed, grew = true, true
		}
	}

	return grew
}

// minSlackBoundaryEdge finds the non-tree edge with exactly one
// endpoint in the tree and minimal slack, and the rank shift the
// current tree needs so that edge becomes tight.
func minSlackBoundaryEdge(g *graph.Graph, inTree map[string]bool) (*graph.Edge, int32) {
	var best *graph.Edge
	var bestSlack int32
	for _, e := range g.Edges() {
		vIn, wIn := inTree[e.From], inTree[e.To]
		if vIn == wIn {
			continue
		}
		slack := g.Vertex(e.To).Rank - g.Vertex(e.From).Rank - doubledMinlen(e)
		if best == nil || slack < bestSlack {
			best, bestSlack = e, slack
		}
	}
	if best == nil {
		return nil, 0
	}
	if inTree[best.To] {
		return best, -bestSlack
	}

	return best, bestSlack
}

// normalizeRanks subtracts the minimum occupied rank from every
// vertex so the lowest rank is 0.
func normalizeRanks(g *graph.Graph) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return
	}
	min := g.Vertex(verts[0]).Rank
	for _, id := range verts[1:] {
		if r := g.Vertex(id).Rank; r < min {
			min = r
		}
	}
	if min == 0 {
		return
	}
	for _, id := range verts {
		g.Vertex(id).Rank -= min
	}
}
