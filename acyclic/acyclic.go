package acyclic

import (
	"errors"

	"github.com/katalvlaran/arglayout/graph"
)

// ErrNotDirected is returned when the input graph was not constructed as
// directed (spec's InvalidInput boundary).
var ErrNotDirected = errors.New("acyclic: graph is not directed")

// Result records what RemoveCycles changed, so a later phase can restore
// the original edge set.
type Result struct {
	// DeletedLoops are self-loops removed from the graph, with their
	// original attributes.
	DeletedLoops []graph.Edge
	// ReversedEdges are edges that were inverted, recorded with their
	// ORIGINAL (pre-reversal) From/To/Attrs.
	ReversedEdges []graph.Edge
}

// RemoveCycles mutates g into an acyclic graph: self-loops are deleted,
// and a heuristically small feedback arc set is reversed. Returns the
// removed/reversed edges (original orientation) for later restoration.
func RemoveCycles(g *graph.Graph) (*Result, error) {
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	order := computeOrdering(g.Clone())
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	res := &Result{}
	for _, e := range g.Edges() {
		if e.From == e.To {
			res.DeletedLoops = append(res.DeletedLoops, *e)
			_ = g.RemoveEdge(e.From, e.To, e.Name)

			continue
		}
		if pos[e.From] > pos[e.To] {
			res.ReversedEdges = append(res.ReversedEdges, *e)
			_ = g.RemoveEdge(e.From, e.To, e.Name)
			_, _ = g.AddEdge(e.To, e.From, e.Name, e.Attrs)
		}
	}

	return res, nil
}

// computeOrdering runs the Eades-Lin-Smyth peeling on work (which is
// consumed/destroyed) and returns sigma = S0 ++ reverse(S1).
func computeOrdering(work *graph.Graph) []string {
	for _, e := range work.Edges() {
		if e.From == e.To {
			_ = work.RemoveEdge(e.From, e.To, e.Name)
		}
	}

	var s0, s1 []string
	for len(work.Vertices()) > 0 {
		removeWhile(work, &s1, func(v string) bool { return work.OutDegree(v) == 0 })
		removeWhile(work, &s0, func(v string) bool { return work.InDegree(v) == 0 })

		if vs := work.Vertices(); len(vs) > 0 {
			best, bestDelta := vs[0], degreeDelta(work, vs[0])
			for _, v := range vs[1:] {
				if d := degreeDelta(work, v); d > bestDelta {
					best, bestDelta = v, d
				}
			}
			s0 = append(s0, best)
			_ = work.RemoveVertex(best)
		}
	}

	sigma := make([]string, 0, len(s0)+len(s1))
	sigma = append(sigma, s0...)
	for i := len(s1) - 1; i >= 0; i-- {
		sigma = append(sigma, s1[i])
	}

	return sigma
}

// removeWhile repeatedly scans work's current (stable-order) vertex list
// and removes every vertex matching pred, appending each to *into, until
// a full pass finds none left.
func removeWhile(work *graph.Graph, into *[]string, pred func(string) bool) {
	for {
		found := false
		for _, v := range work.Vertices() {
			if !work.HasVertex(v) || !pred(v) {
				continue
			}
			*into = append(*into, v)
			_ = work.RemoveVertex(v)
			found = true
		}
		if !found {
			return
		}
	}
}

func degreeDelta(g *graph.Graph, v string) int {
	return g.OutDegree(v) - g.InDegree(v)
}
