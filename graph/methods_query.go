package graph

// OutEdges returns edges leaving id, in insertion order.
func (g *Graph) OutEdges(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, k := range g.edgeOrder {
		e := g.edges[k]
		if e.From == id {
			out = append(out, e)
		}
	}

	return out
}

// InEdges returns edges entering id, in insertion order.
func (g *Graph) InEdges(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, k := range g.edgeOrder {
		e := g.edges[k]
		if e.To == id {
			out = append(out, e)
		}
	}

	return out
}

// IncidentEdges returns all edges touching id (in, out, and loops once).
func (g *Graph) IncidentEdges(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, k := range g.edgeOrder {
		e := g.edges[k]
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	return out
}

// Successors returns the distinct vertex IDs reachable via one out-edge
// from id, in first-seen order.
func (g *Graph) Successors(id string) []string {
	return distinctEndpoints(g.OutEdges(id), func(e *Edge) string { return e.To })
}

// Predecessors returns the distinct vertex IDs with an out-edge into id,
// in first-seen order.
func (g *Graph) Predecessors(id string) []string {
	return distinctEndpoints(g.InEdges(id), func(e *Edge) string { return e.From })
}

func distinctEndpoints(edges []*Edge, pick func(*Edge) string) []string {
	seen := make(map[string]bool, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		id := pick(e)
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}

// InDegree and OutDegree count incident edges, not distinct neighbors.
func (g *Graph) InDegree(id string) int  { return len(g.InEdges(id)) }
func (g *Graph) OutDegree(id string) int { return len(g.OutEdges(id)) }
