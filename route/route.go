package route

import (
	"github.com/katalvlaran/arglayout/acyclic"
	"github.com/katalvlaran/arglayout/graph"
)

// Finalize emits Bézier control points for every edge, collapses
// long-edge dummy chains back into a single routed edge per original
// edge, restores the warrant sink's x to its underlying edge's source
// x, and restores the self-loops and reversed edges acyclic.RemoveCycles
// set aside (spec 4.G). removed may be nil if no cycles were removed.
func Finalize(g *graph.Graph, removed *acyclic.Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrNotDirected
	}

	routeEdges(g)
	restoreWarrantSinkX(g)
	collapseDummyChains(g)

	if removed != nil {
		restoreReversedEdges(g, removed)
		restoreLoops(g, removed)
	}

	return nil
}

// routeEdges gives every current edge a three-point Bézier control
// sequence: the vertex centers as endpoints, and a bend point that
// keeps the segment leaving a fan-out vertex (or entering a fan-in
// vertex) straight near that vertex (spec 4.G).
func routeEdges(g *graph.Graph) {
	for _, e := range g.Edges() {
		from, to := g.Vertex(e.From), g.Vertex(e.To)
		p0 := graph.Point{X: from.Layout.X, Y: from.Layout.Y}
		p2 := graph.Point{X: to.Layout.X, Y: to.Layout.Y}

		var bend graph.Point
		if len(g.IncidentEdges(e.From)) > 1 {
			bend = graph.Point{X: from.Layout.X, Y: to.Layout.Y}
		} else {
			bend = graph.Point{X: to.Layout.X, Y: from.Layout.Y}
		}

		e.Layout.Points = [3]graph.Point{p0, bend, p2}
	}
}

// restoreWarrantSinkX sets each warrant sink's x to the x of the
// underlying edge's source vertex (spec 4.G, spec.md §8 scenario 4).
func restoreWarrantSinkX(g *graph.Graph) {
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsWarrantSink {
			continue
		}
		for _, e := range g.Edges() {
			if graph.WarrantSinkID(e.From, e.To) == id {
				v.Layout.X = g.Vertex(e.From).Layout.X

				break
			}
		}
	}
}

// collapseDummyChains finds every maximal run of IsDummyNode vertices
// (each has exactly one in-edge and one out-edge by construction) and
// replaces it with a single edge whose control points are the first
// sub-edge's first two points and the last sub-edge's final point
// (spec 4.G).
func collapseDummyChains(g *graph.Graph) {
	visited := make(map[string]bool)
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsDummyNode || visited[id] {
			continue
		}

		cur := id
		var entering *graph.Edge
		for g.Vertex(cur).IsDummyNode {
			in := g.InEdges(cur)
			if len(in) != 1 {
				break
			}
			entering = in[0]
			cur = in[0].From
		}
		realFrom := cur

		var subEdges []*graph.Edge
		var dummies []string
		from := realFrom
		for {
			outs := g.OutEdges(from)
			if from == realFrom && entering != nil {
				outs = []*graph.Edge{entering} // realFrom may have other out-edges
			}
			if len(outs) != 1 {
				break
			}
			e := outs[0]
			subEdges = append(subEdges, e)
			if !g.Vertex(e.To).IsDummyNode {
				break
			}
			dummies = append(dummies, e.To)
			visited[e.To] = true
			from = e.To
		}
		if len(subEdges) < 2 {
			continue
		}

		first, last := subEdges[0], subEdges[len(subEdges)-1]
		pts := [3]graph.Point{first.Layout.Points[0], first.Layout.Points[1], last.Layout.Points[2]}
		realTo, name, attrs := last.To, last.Name, last.Attrs

		for _, d := range dummies {
			_ = g.RemoveVertex(d)
		}
		ne, err := g.AddEdge(realFrom, realTo, name, attrs)
		if err == nil {
			ne.Layout.Points = pts
		}
	}
}

// restoreReversedEdges swaps each reversed edge back to its original
// orientation, keeping whatever points were already computed for the
// reversed orientation rather than recomputing or reversing them.
func restoreReversedEdges(g *graph.Graph, removed *acyclic.Result) {
	for _, orig := range removed.ReversedEdges {
		cur := g.Edge(orig.To, orig.From, orig.Name)
		if cur == nil {
			continue
		}
		pts := cur.Layout.Points
		_ = g.RemoveEdge(cur.From, cur.To, cur.Name)
		ne, err := g.AddEdge(orig.From, orig.To, orig.Name, orig.Attrs)
		if err == nil {
			ne.Layout.Points = pts
		}
	}
}

// restoreLoops re-adds every deleted self-loop with a small fixed
// control polygon bulging out from the vertex's own center.
func restoreLoops(g *graph.Graph, removed *acyclic.Result) {
	for _, loop := range removed.DeletedLoops {
		v := g.Vertex(loop.From)
		if v == nil {
			continue
		}
		ne, err := g.AddEdge(loop.From, loop.To, loop.Name, loop.Attrs)
		if err != nil {
			continue
		}
		cx, cy := v.Layout.X, v.Layout.Y
		bulge := v.Attrs.Width/2 + v.Attrs.Height/2 + 10
		ne.Layout.Points = [3]graph.Point{
			{X: cx, Y: cy},
			{X: cx + bulge, Y: cy - bulge},
			{X: cx, Y: cy},
		}
	}
}
