package order

import (
	"fmt"

	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/rank"
)

// splitLongEdges inserts rank(w)-rank(v)-1 dummy vertices on every edge
// spanning more than one rank (spec 4.E.1), chained by unit edges and
// flagged IsDummyNode. route.Finalize later discovers these chains by
// walking successor links (each dummy has exactly one in-edge and one
// out-edge) and collapses them back into a single routed edge.
func splitLongEdges(g *graph.Graph, ranks *rank.Table) {
	for _, e := range g.Edges() {
		rv, ok1 := ranks.Rank(e.From)
		rw, ok2 := ranks.Rank(e.To)
		if !ok1 || !ok2 {
			continue
		}
		span := int32(rw - rv)
		if span <= 2 {
			continue // already unit length (or warrant/same-rank, untouched)
		}

		n := int(span/2) - 1
		prev := e.From
		for i := 1; i <= n; i++ {
			dummyID := fmt.Sprintf("%s\x00%s\x00%s#%d", e.From, e.To, e.Name, i)
			_ = g.AddVertex(dummyID)
			dv := g.Vertex(dummyID)
			dv.IsDummyNode = true
			r := rv + rank.Rank(2*i)
			dv.Rank = int32(r)
			dv.Attrs = graph.VertexAttrs{}
			ranks.Set(dummyID, r)

			_, _ = g.AddEdge(prev, dummyID, "", graph.EdgeAttrs{Minlen: 1, Weight: e.Attrs.Weight})
			prev = dummyID
		}
		_, _ = g.AddEdge(prev, e.To, e.Name, e.Attrs)
		_ = g.RemoveEdge(e.From, e.To, e.Name)
	}
}
