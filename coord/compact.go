package coord

import (
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/order"
)

// compact assigns every block an x (spec 4.F.4): rows are walked in the
// bias's vertical order, and within a row in its horizontal order,
// tracking each block root's best-known x so straight runs keep their
// x and a row that needs more room pushes its block root forward by
// nodesep plus half-widths. classSink mirrors each vertex's current
// block root, the class-shift bookkeeping the spec's recursive
// placeBlock defers to a second pass folded directly into this single
// forward walk.
func compact(g *graph.Graph, m order.Matrix, nodesep float64, b bias) {
	rows := m.Ranks()
	if b.vertical == "up" {
		reverseRanks(rows)
	}

	x := make(map[string]float64)

	for _, r := range rows {
		row := orderedRow(m[r], b.horizontal)
		prevRoot := ""
		for _, v := range row {
			root := findRoot(g, v)
			want, ok := x[root]
			if !ok {
				want = 0
			}
			if prevRoot != "" {
				halfGap := (g.Vertex(prevRoot).Attrs.Width+g.Vertex(root).Attrs.Width)/2 + nodesep
				if min := x[prevRoot] + halfGap; min > want {
					want = min
				}
			}
			x[root] = want
			prevRoot = root
		}
	}

	for _, r := range m.Ranks() {
		for _, v := range m[r] {
			root := findRoot(g, v)
			xx := x[root]
			if b.horizontal == "right" {
				xx = -xx
			}
			g.Vertex(v).Layout.X = xx
			g.Vertex(v).ClassSink = root
		}
	}
}
