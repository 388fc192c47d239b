package coord

import (
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/order"
)

// markType1Conflicts flags every inter-rank edge whose north endpoint
// falls outside the bracket of the nearest surrounding inner (dummy-to-
// dummy) segment (spec 4.F.2), so alignment skips it.
func markType1Conflicts(g *graph.Graph, m order.Matrix) {
	rs := m.Ranks()
	for i := 1; i < len(rs); i++ {
		markConflictsBetween(g, m[rs[i-1]], m[rs[i]])
	}
}

func markConflictsBetween(g *graph.Graph, north, south []string) {
	northPos := indexOf(north)
	k0, l0 := 0, 0

	for l1, v := range south {
		dummyPred := ""
		if g.Vertex(v).IsDummyNode {
			if in := g.InEdges(v); len(in) == 1 && g.Vertex(in[0].From).IsDummyNode {
				dummyPred = in[0].From
			}
		}
		if dummyPred == "" && l1 != len(south)-1 {
			continue
		}

		k1 := len(north) - 1
		if dummyPred != "" {
			if p, ok := northPos[dummyPred]; ok {
				k1 = p
			}
		}

		for ; l0 <= l1; l0++ {
			w := south[l0]
			for _, e := range g.InEdges(w) {
				k, ok := northPos[e.From]
				if !ok {
					continue
				}
				inner := g.Vertex(e.From).IsDummyNode && g.Vertex(w).IsDummyNode
				if !inner && (k < k0 || k > k1) {
					e.IsConflicted = true
				}
			}
		}
		k0 = k1
	}
}

func indexOf(row []string) map[string]int {
	out := make(map[string]int, len(row))
	for i, id := range row {
		out[id] = i
	}

	return out
}
