package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/layer"
	"github.com/katalvlaran/arglayout/order"
	"github.com/katalvlaran/arglayout/rank"
)

func newVertex(t *testing.T, g *graph.Graph, id string, w, h float64) {
	t.Helper()
	require.NoError(t, g.AddVertex(id))
	g.Vertex(id).Attrs = graph.VertexAttrs{Width: w, Height: h}
}

func TestAssignRespectsNodeSep(t *testing.T) {
	g := graph.NewGraph()
	g.NodeSep = 50
	for _, id := range []string{"a", "b", "c", "d"} {
		newVertex(t, g, id, 40, 20)
	}
	_, err := g.AddEdge("a", "d", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("b", "d", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", "", graph.EdgeAttrs{})
	require.NoError(t, err)

	ranks, err := layer.Assign(g)
	require.NoError(t, err)
	m, err := order.Minimize(g, ranks)
	require.NoError(t, err)

	require.NoError(t, Assign(g, ranks, m))

	row := m[rank.Of(0)]
	require.Len(t, row, 3)
	for i := 1; i < len(row); i++ {
		u, v := g.Vertex(row[i-1]), g.Vertex(row[i])
		assert.GreaterOrEqual(t, v.Layout.X-u.Layout.X, g.NodeSep+(u.Attrs.Width+v.Attrs.Width)/2-1e-6)
	}
}

func TestAssignConjunctChildrenContiguousAndSpaced(t *testing.T) {
	g := graph.NewGraph()
	g.NodeSep = 30
	newVertex(t, g, "a", 40, 20)
	newVertex(t, g, "b", 40, 20)
	newVertex(t, g, "c", 40, 20)
	_, err := g.AddEdge("a", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	require.NoError(t, g.SetConjunctNode("a", "a", "c"))
	require.NoError(t, g.SetConjunctNode("b", "a", "c"))

	ranks, err := layer.Assign(g)
	require.NoError(t, err)
	m, err := order.Minimize(g, ranks)
	require.NoError(t, err)

	require.NoError(t, Assign(g, ranks, m))

	xa, xb := g.Vertex("a").Layout.X, g.Vertex("b").Layout.X
	assert.GreaterOrEqual(t, math.Abs(xb-xa), g.NodeSep+(g.Vertex("a").Attrs.Width+g.Vertex("b").Attrs.Width)/2-1e-6)
	assert.Equal(t, g.Vertex("a").Layout.Y, g.Vertex("b").Layout.Y)
}

func TestAssignSingleVertex(t *testing.T) {
	g := graph.NewGraph()
	newVertex(t, g, "a", 40, 20)

	ranks, err := layer.Assign(g)
	require.NoError(t, err)
	m, err := order.Minimize(g, ranks)
	require.NoError(t, err)

	require.NoError(t, Assign(g, ranks, m))
	assert.Equal(t, 0.0, g.Vertex("a").Layout.X)
}

func TestAssignEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	ranks, err := layer.Assign(g)
	require.NoError(t, err)
	m, err := order.Minimize(g, ranks)
	require.NoError(t, err)

	assert.NoError(t, Assign(g, ranks, m))
}

func TestAssignRejectsUndirected(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(false))
	err := Assign(g, rank.New(), order.Matrix{})
	assert.ErrorIs(t, err, ErrNotDirected)
}

func TestAssignNilInputs(t *testing.T) {
	assert.ErrorIs(t, Assign(nil, nil, nil), ErrGraphNil)

	g := graph.NewGraph()
	assert.ErrorIs(t, Assign(g, nil, nil), ErrRanksNil)
	assert.ErrorIs(t, Assign(g, rank.New(), nil), ErrMatrixNil)
}
