package acyclic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arglayout/graph"
)

func buildCycle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(graph.WithLoops())
	_, err := g.AddEdge("a", "b", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", "", graph.EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("a", "a", "", graph.EdgeAttrs{})
	require.NoError(t, err)

	return g
}

func isAcyclicNoLoops(g *graph.Graph) bool {
	for _, e := range g.Edges() {
		if e.From == e.To {
			return false
		}
	}
	// Kahn's algorithm.
	indeg := make(map[string]int)
	for _, v := range g.Vertices() {
		indeg[v] = g.InDegree(v)
	}
	var queue []string
	for v, d := range indeg {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	visited := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		visited++
		for _, s := range g.Successors(v) {
			indeg[s]--
			if indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}

	return visited == len(g.Vertices())
}

func TestRemoveCyclesProducesAcyclicGraph(t *testing.T) {
	g := buildCycle(t)
	res, err := RemoveCycles(g)
	require.NoError(t, err)

	assert.True(t, isAcyclicNoLoops(g))
	require.Len(t, res.DeletedLoops, 1)
	assert.Equal(t, "a", res.DeletedLoops[0].From)
	require.Len(t, res.ReversedEdges, 1)
}

func TestRemoveCyclesOnTreeReversesNothing(t *testing.T) {
	g := graph.NewGraph()
	_, _ = g.AddEdge("a", "b", "", graph.EdgeAttrs{})
	_, _ = g.AddEdge("a", "c", "", graph.EdgeAttrs{})

	res, err := RemoveCycles(g)
	require.NoError(t, err)
	assert.Empty(t, res.DeletedLoops)
	assert.Empty(t, res.ReversedEdges)
}

func TestRemoveCyclesRejectsUndirected(t *testing.T) {
	g := graph.NewGraph(graph.WithDirected(false))
	_, err := RemoveCycles(g)
	assert.ErrorIs(t, err, ErrNotDirected)
}

func TestRemoveCyclesEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	res, err := RemoveCycles(g)
	require.NoError(t, err)
	assert.Empty(t, res.DeletedLoops)
	assert.Empty(t, res.ReversedEdges)
}
