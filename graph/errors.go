package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an operation was given an empty vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrMultiEdgeNotAllowed indicates a parallel edge (same from, to, name) already exists.
	ErrMultiEdgeNotAllowed = errors.New("graph: an edge with this from/to/name already exists")

	// ErrNotDirected indicates the graph was not constructed as directed.
	// The layout engine requires a directed input graph (spec: InvalidInput).
	ErrNotDirected = errors.New("graph: graph is not directed")

	// ErrNegativeMinlen indicates an edge was given a negative minlen (a
	// zero minlen is replaced by the default 1).
	ErrNegativeMinlen = errors.New("graph: minlen must be >= 1")

	// ErrParentCycle indicates setting a parent would create a cycle in the
	// compound parent forest.
	ErrParentCycle = errors.New("graph: parent assignment would create a cycle")

	// ErrNoSuchEdgeForConjunct indicates setConjunctNode referenced an edge
	// (u,w) that does not exist in the graph.
	ErrNoSuchEdgeForConjunct = errors.New("graph: conjunct target edge does not exist")

	// ErrNoSuchEdgeForWarrant indicates setWarrantEdge referenced an edge
	// (u,w) that does not exist in the graph.
	ErrNoSuchEdgeForWarrant = errors.New("graph: warrant target edge does not exist")
)
