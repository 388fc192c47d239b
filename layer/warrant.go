package layer

import "github.com/katalvlaran/arglayout/graph"

// sourceStash records a warrant source's attributes, its edge into the
// sink, and every other edge it carries.
type sourceStash struct {
	id         string
	attrs      graph.VertexAttrs
	edgeToSink graph.Edge
	otherEdges []graph.Edge
}

// warrantStash records one warrant's merged-away source(s) and sink,
// plus the underlying edge (u,w) the warrant targets.
type warrantStash struct {
	sink      string
	sinkAttrs graph.VertexAttrs
	u, w      string
	sources   []sourceStash
}

// mergeWarrants removes every warrant source and sink from the
// working graph (spec 4.D.1), leaving the underlying edge (u,w)
// untouched so it ranks normally. The pair is repositioned relative to
// u's final rank in splitWarrants rather than participating in the
// simplex itself, since the module's graph.AddEdge never admits a
// true zero-minlen edge to pin the pair to u's rank during layering.
func mergeWarrants(g *graph.Graph) ([]warrantStash, error) {
	var out []warrantStash
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsWarrantSink {
			continue
		}
		u, w, ok := underlyingEdge(g, id)
		if !ok {
			return nil, ErrBrokenWarrant
		}

		st := warrantStash{sink: id, sinkAttrs: v.Attrs, u: u, w: w}
		for _, pe := range g.InEdges(id) {
			s := pe.From
			sst := sourceStash{id: s, attrs: g.Vertex(s).Attrs, edgeToSink: *pe}
			for _, e := range g.IncidentEdges(s) {
				if e.From == s && e.To == id {
					continue
				}
				sst.otherEdges = append(sst.otherEdges, *e)
			}
			st.sources = append(st.sources, sst)
			_ = g.RemoveVertex(s)
		}
		_ = g.RemoveVertex(id)
		out = append(out, st)
	}

	return out, nil
}

// underlyingEdge finds the edge (u,w) whose WarrantSinkID matches sink.
func underlyingEdge(g *graph.Graph, sink string) (u, w string, ok bool) {
	for _, e := range g.Edges() {
		if graph.WarrantSinkID(e.From, e.To) == sink {
			return e.From, e.To, true
		}
	}

	return "", "", false
}

// splitWarrants restores each warrant's source(s) and sink at
// rank(u)+0.5. If w sits below rank(u)+1, w and every vertex at or
// beyond its rank are shifted up until w reaches rank(u)+1; a w already
// at or above rank(u)+1 is left where it is (spec 4.D.5).
func splitWarrants(g *graph.Graph, stashes []warrantStash) {
	for _, st := range stashes {
		u := g.Vertex(st.u)
		if u == nil {
			continue
		}
		sinkRank := u.Rank + 1 // +0.5 in doubled units

		_ = g.AddVertex(st.sink)
		sink := g.Vertex(st.sink)
		sink.IsWarrantSink = true
		sink.Attrs = st.sinkAttrs
		sink.Rank = sinkRank

		for _, src := range st.sources {
			_ = g.AddVertex(src.id)
			sv := g.Vertex(src.id)
			sv.Attrs = src.attrs
			sv.Rank = sinkRank
			for _, e := range src.otherEdges {
				_, _ = g.AddEdge(e.From, e.To, e.Name, e.Attrs)
			}
			_, _ = g.AddEdge(src.edgeToSink.From, src.edgeToSink.To, src.edgeToSink.Name, src.edgeToSink.Attrs)
		}

		wantW := sinkRank + 1 // rank(u)+1, whole rank
		if w := g.Vertex(st.w); w != nil && w.Rank < wantW {
			shiftRanksAtOrAbove(g, w.Rank, wantW-w.Rank)
		}
	}
}

func shiftRanksAtOrAbove(g *graph.Graph, threshold, delta int32) {
	for _, id := range g.Vertices() {
		if v := g.Vertex(id); v.Rank >= threshold {
			v.Rank += delta
		}
	}
}
