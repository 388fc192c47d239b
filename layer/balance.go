package layer

import "github.com/katalvlaran/arglayout/graph"

// balance moves every vertex with indeg == outdeg to the least
// populated rank within the widest range that keeps all its edges
// feasible, purely for visual spread (spec 4.D.5). Runs before
// conjunct/warrant splitting so half ranks are never balance
// candidates.
func balance(g *graph.Graph) {
	counts := make(map[int32]int)
	for _, id := range g.Vertices() {
		counts[g.Vertex(id).Rank]++
	}

	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		in, out := g.InEdges(id), g.OutEdges(id)
		if len(in) == 0 || len(in) != len(out) {
			continue
		}

		low := int32(-1 << 31)
		for _, e := range in {
			if want := g.Vertex(e.From).Rank + doubledMinlen(e); want > low {
				low = want
			}
		}
		high := int32(1<<31 - 1)
		for _, e := range out {
			if want := g.Vertex(e.To).Rank - doubledMinlen(e); want < high {
				high = want
			}
		}
		if high <= low {
			continue
		}

		best, bestCount := v.Rank, counts[v.Rank]
		for r := low; r <= high; r += 2 {
			if counts[r] < bestCount {
				best, bestCount = r, counts[r]
			}
		}
		if best != v.Rank {
			counts[v.Rank]--
			counts[best]++
			v.Rank = best
		}
	}
}
