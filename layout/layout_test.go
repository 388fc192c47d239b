package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arglayout/graph"
)

func newVertex(t *testing.T, g *graph.Graph, id string) {
	t.Helper()
	require.NoError(t, g.AddVertex(id))
}

func TestLayoutSimpleChain(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a")
	newVertex(t, g, "b")
	newVertex(t, g, "c")
	_, err := g.AddEdge("a", "b", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, g.Vertex("a").Layout.X, g.Vertex("b").Layout.X)
	assert.Equal(t, g.Vertex("b").Layout.X, g.Vertex("c").Layout.X)
	assert.Less(t, g.Vertex("a").Layout.Y, g.Vertex("b").Layout.Y)
	assert.Less(t, g.Vertex("b").Layout.Y, g.Vertex("c").Layout.Y)
}

func TestLayoutThreeIntoOne(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		newVertex(t, g, id)
	}
	for _, pair := range [][2]string{{"a", "d"}, {"a", "e"}, {"b", "d"}, {"c", "d"}} {
		_, err := g.AddEdge(pair[0], pair[1], "", graph.EdgeAttrs{})
		require.NoError(t, err)
	}

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, g.Vertex("a").Layout.Y, g.Vertex("b").Layout.Y)
	assert.Equal(t, g.Vertex("b").Layout.Y, g.Vertex("c").Layout.Y)
	assert.Equal(t, g.Vertex("d").Layout.Y, g.Vertex("e").Layout.Y)

	xs := []float64{g.Vertex("a").Layout.X, g.Vertex("b").Layout.X, g.Vertex("c").Layout.X}
	median := medianOf(xs)
	assert.InDelta(t, median, g.Vertex("d").Layout.X, g.NodeSep+1)
}

func medianOf(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	return sorted[len(sorted)/2]
}

func TestLayoutConjunct(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a")
	newVertex(t, g, "b")
	newVertex(t, g, "c")
	_, err := g.AddEdge("a", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	require.NoError(t, g.SetConjunctNode("a", "a", "c"))
	require.NoError(t, g.SetConjunctNode("b", "a", "c"))

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, g.Vertex("a").Layout.Y, g.Vertex("b").Layout.Y)
	assert.Less(t, g.Vertex("a").Layout.Y, g.Vertex("c").Layout.Y)

	lo, hi := g.Vertex("a").Layout.X, g.Vertex("b").Layout.X
	if lo > hi {
		lo, hi = hi, lo
	}
	assert.GreaterOrEqual(t, g.Vertex("c").Layout.X, lo)
	assert.LessOrEqual(t, g.Vertex("c").Layout.X, hi)
}

func TestLayoutWarrant(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a")
	newVertex(t, g, "b")
	newVertex(t, g, "c")
	_, err := g.AddEdge("a", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	require.NoError(t, g.SetWarrantEdge("b", "a", "c", graph.EdgeAttrs{}))

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.Less(t, g.Vertex("a").Layout.Y, g.Vertex("b").Layout.Y)
	assert.Less(t, g.Vertex("b").Layout.Y, g.Vertex("c").Layout.Y)

	sinkID := graph.WarrantSinkID("a", "c")
	sink := g.Vertex(sinkID)
	require.NotNil(t, sink)
	assert.Equal(t, g.Vertex("b").Layout.Y, sink.Layout.Y)
	assert.Equal(t, g.Vertex("a").Layout.X, sink.Layout.X)
}

func TestLayoutCycleWithSelfLoop(t *testing.T) {
	g := graph.NewGraph(graph.WithLoops())
	newVertex(t, g, "a")
	newVertex(t, g, "b")
	newVertex(t, g, "c")
	_, err := g.AddEdge("a", "b", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("a", "a", "loop", graph.EdgeAttrs{})
	require.NoError(t, err)

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "c"))
	assert.True(t, g.HasEdge("c", "a"))
	assert.NotNil(t, g.Edge("a", "a", "loop"))
}

func TestLayoutCrossingReducibleEighteenVertices(t *testing.T) {
	g := graph.NewGraph()
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r"}
	for _, id := range ids {
		newVertex(t, g, id)
	}
	tree := [][2]string{
		{"a", "b"}, {"a", "c"},
		{"b", "d"}, {"b", "e"},
		{"c", "f"}, {"c", "g"},
		{"d", "h"}, {"d", "i"},
		{"e", "j"}, {"e", "k"},
		{"f", "l"}, {"f", "m"},
		{"g", "n"}, {"g", "o"},
		{"h", "p"}, {"h", "q"},
		{"i", "r"},
	}
	for _, e := range tree {
		_, err := g.AddEdge(e[0], e[1], "", graph.EdgeAttrs{})
		require.NoError(t, err)
	}
	_, err := g.AddEdge("i", "c", "back1", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("l", "g", "back2", graph.EdgeAttrs{})
	require.NoError(t, err)

	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	assert.GreaterOrEqual(t, g.Vertex("h").Layout.Y, g.Vertex("d").Layout.Y)
	assert.GreaterOrEqual(t, g.Vertex("d").Layout.Y, g.Vertex("b").Layout.Y)
	assert.GreaterOrEqual(t, g.Vertex("b").Layout.Y, g.Vertex("a").Layout.Y)
}

func TestLayoutEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	res, err := Layout(g)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestLayoutSingleVertex(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a")

	_, err := Layout(g)
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Vertex("a").Layout.X)
	assert.Equal(t, 0.0, g.Vertex("a").Layout.Y)
}

func TestLayoutPreservesWidthHeight(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	g.Vertex("a").Attrs = graph.VertexAttrs{Width: 42, Height: 17}

	_, err := Layout(g)
	require.NoError(t, err)

	assert.Equal(t, 42.0, g.Vertex("a").Attrs.Width)
	assert.Equal(t, 17.0, g.Vertex("a").Attrs.Height)
}

func TestLayoutAppliesDefaultSize(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a")
	newVertex(t, g, "b")

	_, err := Layout(g)
	require.NoError(t, err)

	// The default size is applied to the working copy only: a and b share
	// rank 0 and are spaced as 300-wide vertices, while the caller's own
	// unset attributes stay unset.
	gap := g.Vertex("b").Layout.X - g.Vertex("a").Layout.X
	if gap < 0 {
		gap = -gap
	}
	assert.GreaterOrEqual(t, gap, g.NodeSep+300-1e-6)
	assert.Equal(t, 0.0, g.Vertex("a").Attrs.Width)
	assert.Equal(t, 0.0, g.Vertex("a").Attrs.Height)
}

func TestLayoutRejectsUndirected(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(false))
	_, err := Layout(g)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLayoutNilGraph(t *testing.T) {
	_, err := Layout(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
