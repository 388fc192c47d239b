package graph

// AddVertex inserts a vertex with the given ID if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, BlockRoot: id, NextBlockNode: id, ClassSink: id}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether id names a vertex in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the *Vertex for id, or nil if absent. The returned
// pointer aliases internal state: used within the module to read/write
// scratch fields across phases.
func (g *Graph) Vertex(id string) *Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices[id]
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// RemoveVertex deletes a vertex and all edges incident to it (as From or
// To), and detaches it from the parent forest.
func (g *Graph) RemoveVertex(id string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	for _, e := range g.allIncidentLocked(id) {
		g.removeEdgeLocked(e.key())
	}

	delete(g.vertices, id)
	g.vertexOrder = removeString(g.vertexOrder, id)
	g.detachParentLocked(id)

	return nil
}

func (g *Graph) allIncidentLocked(id string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// AddEdge creates a directed edge from -> to, optionally disambiguated by
// name, with the given attrs. Returns ErrEmptyVertexID, ErrNegativeMinlen,
// ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to, name string, attrs EdgeAttrs) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if attrs.Minlen == 0 {
		attrs.Minlen = 1
	}
	if attrs.Minlen < 1 {
		return nil, ErrNegativeMinlen
	}
	if attrs.Weight == 0 {
		attrs.Weight = 1
	}

	if err := g.AddVertex(from); err != nil {
		return nil, err
	}
	if err := g.AddVertex(to); err != nil {
		return nil, err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	k := edgeKey(from, to, name)
	if _, exists := g.edges[k]; exists {
		return nil, ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Name: name, Attrs: attrs}
	g.edges[k] = e
	g.edgeOrder = append(g.edgeOrder, k)
	g.linkAdjacencyLocked(e)

	return e, nil
}

func (g *Graph) linkAdjacencyLocked(e *Edge) {
	ensureEdgeBucket(g.adjOut, e.From, e.To)
	g.adjOut[e.From][e.To][e.Name] = e
	ensureEdgeBucket(g.adjIn, e.To, e.From)
	g.adjIn[e.To][e.From][e.Name] = e
}

func ensureEdgeBucket(m map[string]map[string]map[string]*Edge, a, b string) {
	if m[a] == nil {
		m[a] = make(map[string]map[string]*Edge)
	}
	if m[a][b] == nil {
		m[a][b] = make(map[string]*Edge)
	}
}

// RemoveEdge deletes the edge identified by (from,to,name). If the
// source was a conjunct container left with no children, or the target
// was a warrant sink, the cascading cleanup rules in spec 4.A apply.
func (g *Graph) RemoveEdge(from, to, name string) error {
	g.muEdgeAdj.Lock()
	k := edgeKey(from, to, name)
	if _, ok := g.edges[k]; !ok {
		g.muEdgeAdj.Unlock()

		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(k)
	g.muEdgeAdj.Unlock()

	g.cascadeAfterEdgeRemoval(from, to)

	return nil
}

func (g *Graph) removeEdgeLocked(k string) {
	e, ok := g.edges[k]
	if !ok {
		return
	}
	delete(g.edges, k)
	g.edgeOrder = removeString(g.edgeOrder, k)
	if g.adjOut[e.From] != nil && g.adjOut[e.From][e.To] != nil {
		delete(g.adjOut[e.From][e.To], e.Name)
	}
	if g.adjIn[e.To] != nil && g.adjIn[e.To][e.From] != nil {
		delete(g.adjIn[e.To][e.From], e.Name)
	}
}

// cascadeAfterEdgeRemoval applies two cleanup rules: a conjunct container
// whose out-edge was removed is itself removed when it has no children,
// and a warrant sink whose in-edge was removed is itself removed when no
// in-edge remains. Removing a warrant's underlying edge u->w does not
// remove the sink "u -> w".
func (g *Graph) cascadeAfterEdgeRemoval(from, to string) {
	if v := g.Vertex(from); v != nil && v.IsConjunctNode && len(g.Children(from)) == 0 {
		_ = g.RemoveVertex(from)
	}
	if v := g.Vertex(to); v != nil && v.IsWarrantSink {
		hasIncoming := false
		g.muEdgeAdj.RLock()
		for _, e := range g.edges {
			if e.To == to {
				hasIncoming = true
				break
			}
		}
		g.muEdgeAdj.RUnlock()
		if !hasIncoming {
			_ = g.RemoveVertex(to)
		}
	}
}

// HasEdge reports whether any edge from -> to exists (any name).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjOut[from][to]) > 0
}

// Edge returns the edge (from,to,name), or nil if absent.
func (g *Graph) Edge(from, to, name string) *Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edges[edgeKey(from, to, name)]
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, k := range g.edgeOrder {
		out = append(out, g.edges[k])
	}

	return out
}
