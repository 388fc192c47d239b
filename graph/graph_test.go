package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, []string{"a"}, g.Vertices())
}

func TestAddEdgeRejectsParallelByDefault(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("a", "b", "", EdgeAttrs{})
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", "", EdgeAttrs{})
	assert.ErrorIs(t, err, ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("a", "b", "named", EdgeAttrs{})
	assert.NoError(t, err, "distinct name disambiguates parallel edges")
}

func TestAddEdgeDefaults(t *testing.T) {
	g := NewGraph()
	e, err := g.AddEdge("a", "b", "", EdgeAttrs{})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Attrs.Minlen)
	assert.Equal(t, 1.0, e.Attrs.Weight)
}

func TestRemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("a", "b", "", EdgeAttrs{})
	_, _ = g.AddEdge("b", "c", "", EdgeAttrs{})
	require.NoError(t, g.RemoveVertex("b"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "c"))
	assert.False(t, g.HasVertex("b"))
}

func TestSetParentRejectsCycle(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.SetParent("b", "a"))
	assert.ErrorIs(t, g.SetParent("a", "b"), ErrParentCycle)
}

func TestSetConjunctNodeMergesCluster(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("premise1", "conclusion", "", EdgeAttrs{})
	require.NoError(t, err)

	require.NoError(t, g.SetConjunctNode("premise1", "premise1", "conclusion"))
	container := g.Parent("premise1")
	require.NotEmpty(t, container)
	assert.True(t, g.Vertex(container).IsConjunctNode)
	assert.True(t, g.HasEdge(container, "conclusion"))
	assert.False(t, g.HasEdge("premise1", "conclusion"))

	require.NoError(t, g.SetConjunctNode("premise2", "premise1", "conclusion"))
	assert.Equal(t, container, g.Parent("premise2"))
	assert.ElementsMatch(t, []string{"premise1", "premise2"}, g.Children(container))
}

func TestSetWarrantEdgeCreatesSink(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge("a", "c", "", EdgeAttrs{})
	require.NoError(t, err)

	require.NoError(t, g.SetWarrantEdge("b", "a", "c", EdgeAttrs{Weight: 1}))
	sink := WarrantSinkID("a", "c")
	require.True(t, g.HasVertex(sink))
	assert.True(t, g.Vertex(sink).IsWarrantSink)
	assert.True(t, g.HasEdge("b", sink))
}

func TestRemoveEdgeCascadesConjunctContainer(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("p1", "concl", "", EdgeAttrs{})
	require.NoError(t, g.SetConjunctNode("p1", "p1", "concl"))
	container := g.Parent("p1")

	require.NoError(t, g.RemoveVertex("p1"))
	require.NoError(t, g.RemoveEdge(container, "concl", ""))
	assert.False(t, g.HasVertex(container), "empty conjunct container is cleaned up")
}

func TestRemoveEdgeCascadesWarrantSink(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("a", "c", "", EdgeAttrs{})
	require.NoError(t, g.SetWarrantEdge("b", "a", "c", EdgeAttrs{}))
	sink := WarrantSinkID("a", "c")

	require.NoError(t, g.RemoveEdge("b", sink, ""))
	assert.False(t, g.HasVertex(sink))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	_, _ = g.AddEdge("a", "b", "", EdgeAttrs{Weight: 2, Minlen: 3})
	clone := g.Clone()
	assert.Equal(t, 3, clone.Edge("a", "b", "").Attrs.Minlen)

	require.NoError(t, clone.RemoveVertex("a"))
	assert.True(t, g.HasVertex("a"), "clone mutation must not affect source")
	assert.False(t, clone.HasVertex("a"))
}
