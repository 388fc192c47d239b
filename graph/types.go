package graph

import "sync"

// Point is a single (x,y) coordinate.
type Point struct {
	X, Y float64
}

// VertexAttrs holds the typed input record for a vertex.
type VertexAttrs struct {
	// Width and Height are caller-supplied sizes; defaults 300x100 are
	// applied by layout.Layout, not by this package.
	Width, Height float64
}

// VertexLayout holds the typed output record for a vertex, written once
// by layout.Layout at the end of the pipeline.
type VertexLayout struct {
	X, Y float64
}

// Vertex is a node in the graph. Fields beyond ID/Attrs/Layout are
// per-call scratch used internally by the layout phases; callers outside
// this module's packages should not read or write them.
type Vertex struct {
	ID     string
	Attrs  VertexAttrs
	Layout VertexLayout

	// --- layering scratch (package layer) ---
	Rank              int32 // doubled rank; see rank.Rank
	Number            int   // postorder number in the feasible tree
	MinSubtreeNumber  int   // min postorder number in this vertex's subtree

	// --- ordering scratch (package order) ---
	Barycenter float64
	IsDummyNode bool // inserted by long-edge splitting

	// --- conjunct / warrant flags (packages layer, order, coord) ---
	IsConjunctNode       bool // this vertex is a conjunct container
	IsConjunctDummyNode  bool // sentinel (start-c/end-c) in the constraint graph
	IsWarrantSink        bool // this vertex is a warrant-sink "u -> w"
	IsWarrantDummySource bool // sentinel standing in for a warrant source

	// --- coordinate-assignment scratch (package coord) ---
	BlockRoot     string // root of this vertex's alignment block; "" = self
	NextBlockNode string // next vertex in the block's circular linked list; "" = self
	ClassSink     string // placement-DAG class this vertex's block belongs to
	XShift        float64
}

// EdgeAttrs holds the typed input record for an edge.
type EdgeAttrs struct {
	// Minlen is the minimum rank difference this edge must span; >= 1.
	Minlen int
	// Weight biases layering/ordering toward keeping this edge short/straight.
	Weight float64
}

// EdgeLayout holds the typed output record for an edge: exactly three
// control points of a quadratic Bezier once routing completes.
type EdgeLayout struct {
	Points [3]Point
}

// Edge is a directed connection from From to To, optionally disambiguated
// by Name when parallel edges are required.
type Edge struct {
	From, To, Name string

	Attrs  EdgeAttrs
	Layout EdgeLayout

	// --- scratch (packages coord, layer) ---
	IsConflicted bool    // type-1 conflict flag (package coord)
	IsTreeEdge   bool    // member of the current feasible spanning tree (package layer)
	CutValue     float64 // tree-edge cut value (package layer)
}

func (e *Edge) key() string { return edgeKey(e.From, e.To, e.Name) }

func edgeKey(from, to, name string) string { return from + "\x00" + to + "\x00" + name }

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets whether the graph is directed. The layout engine
// requires a directed graph; WithDirected(false) exists chiefly so tests
// can exercise the InvalidInput boundary (spec 6: "if the input graph is
// not directed, the engine fails with InvalidInput").
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops marks the graph as one that carries self-loops, as reported
// by Looped. Off by default. AddEdge accepts a self-loop whether or not
// it is set.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed compound graph: vertices may be grouped under a
// parent (a forest relation), edges connect vertices, and self-loops are
// allowed. Multi-edges between the same (from, to)
// are rejected unless distinguished by Name.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowLoops bool

	vertices    map[string]*Vertex
	vertexOrder []string // insertion order, for stable enumeration

	edges    map[string]*Edge // key: edgeKey(from,to,name)
	edgeOrder []string

	// adjOut[from][to][name] / adjIn[to][from][name] mirror each other and
	// both point at the same *Edge.
	adjOut map[string]map[string]map[string]*Edge
	adjIn  map[string]map[string]map[string]*Edge

	parent   map[string]string   // child -> parent
	children map[string][]string // parent -> ordered children

	// Graph-level configuration/outputs (spec 6).
	RankSep, NodeSep           float64
	MaxRankingLoops            int
	MaxCrossingLoops           int
	Width, Height              float64
}

// NewGraph creates an empty, directed-by-default Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:    true,
		vertices:    make(map[string]*Vertex),
		edges:       make(map[string]*Edge),
		adjOut:      make(map[string]map[string]map[string]*Edge),
		adjIn:       make(map[string]map[string]map[string]*Edge),
		parent:      make(map[string]string),
		children:    make(map[string][]string),
		RankSep:     225,
		NodeSep:     100,
		MaxRankingLoops:  100,
		MaxCrossingLoops: 100,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
