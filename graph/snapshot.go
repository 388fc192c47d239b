package graph

// Clone returns a structural copy: every vertex (ID, Attrs, Rank, and the
// dummy/conjunct/warrant flags) and every edge (From, To, Name, Attrs,
// IsConflicted), with everything else scratch reset to its zero value.
// Used by acyclic (to simulate the Eades-Lin-Smyth peeling without
// disturbing the working graph) and by coord (each of the four
// Brandes-Köpf sweeps runs its alignment on its own independent clone so
// BlockRoot/NextBlockNode bookkeeping from one bias never leaks into
// another).
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithDirected(g.directed))
	out.allowLoops = g.allowLoops
	out.RankSep, out.NodeSep = g.RankSep, g.NodeSep
	out.MaxRankingLoops, out.MaxCrossingLoops = g.MaxRankingLoops, g.MaxCrossingLoops

	g.muVert.RLock()
	for _, id := range g.vertexOrder {
		src := g.vertices[id]
		_ = out.AddVertex(id)
		dst := out.vertices[id]
		dst.Attrs = src.Attrs
		dst.Rank = src.Rank
		dst.IsDummyNode = src.IsDummyNode
		dst.IsConjunctNode = src.IsConjunctNode
		dst.IsConjunctDummyNode = src.IsConjunctDummyNode
		dst.IsWarrantSink = src.IsWarrantSink
		dst.IsWarrantDummySource = src.IsWarrantDummySource
	}
	for _, id := range g.vertexOrder {
		for _, child := range g.children[id] {
			out.parent[child] = id
			out.children[id] = append(out.children[id], child)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for _, k := range g.edgeOrder {
		src := g.edges[k]
		ne, _ := out.AddEdge(src.From, src.To, src.Name, src.Attrs)
		ne.IsConflicted = src.IsConflicted
	}
	g.muEdgeAdj.RUnlock()

	return out
}
