package graph

import "fmt"

// SetConjunctNode groups v into the conjunct cluster whose shared
// conclusion is reached via the existing edge u->w. If u has no parent
// yet, a container vertex is synthesized (flagged IsConjunctNode), u is
// reparented under it, and the edge u->w is moved to container->w.
// v is then reparented under the same container. Calling this
// repeatedly with different premises and the same (u,w) grows one
// cluster.
//
// Returns ErrNoSuchEdgeForConjunct if no edge u->w exists on the first
// call for this cluster; once the container exists (or u already has a
// parent), later calls check for no edge at all.
func (g *Graph) SetConjunctNode(v, u, w string) error {
	container := g.Parent(u)
	if container == "" {
		container = conjunctContainerID(w)
		if !g.HasVertex(container) || !g.Vertex(container).IsConjunctNode {
			e := g.Edge(u, w, "")
			if e == nil {
				return ErrNoSuchEdgeForConjunct
			}
			if err := g.AddVertex(container); err != nil {
				return err
			}
			g.Vertex(container).IsConjunctNode = true
			if _, err := g.AddEdge(container, w, "", e.Attrs); err != nil {
				return err
			}
			if err := g.RemoveEdge(u, w, ""); err != nil {
				return err
			}
		}
		if err := g.SetParent(u, container); err != nil {
			return err
		}
	}

	return g.SetParent(v, container)
}

func conjunctContainerID(w string) string { return fmt.Sprintf("-> %s", w) }
