package graph

import "fmt"

// WarrantSinkID returns the identifier of the warrant-sink vertex for
// edge (u,w): the literal string "u -> w".
func WarrantSinkID(u, w string) string { return fmt.Sprintf("%s -> %s", u, w) }

// SetWarrantEdge records that s warrants the inference u->w: a
// zero-sized warrant-sink vertex named WarrantSinkID(u,w) is created if
// missing (flagged IsWarrantSink), and an edge s->sink is created or
// updated with attrs.
//
// Returns ErrNoSuchEdgeForWarrant if edge u->w does not exist.
func (g *Graph) SetWarrantEdge(s, u, w string, attrs EdgeAttrs) error {
	if g.Edge(u, w, "") == nil {
		return ErrNoSuchEdgeForWarrant
	}

	sink := WarrantSinkID(u, w)
	if !g.HasVertex(sink) {
		if err := g.AddVertex(sink); err != nil {
			return err
		}
		v := g.Vertex(sink)
		v.IsWarrantSink = true
		v.Attrs = VertexAttrs{Width: 0, Height: 0}
	}

	if existing := g.Edge(s, sink, ""); existing != nil {
		existing.Attrs = attrs

		return nil
	}
	_, err := g.AddEdge(s, sink, "", attrs)

	return err
}
