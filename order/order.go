package order

import (
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/rank"
)

// Minimize computes a left-to-right vertex order per rank (spec 4.E). It
// inserts long-edge dummy vertices into g (recording their ranks into
// ranks) but otherwise only reorders existing vertices within their own
// rank; no vertex's rank changes.
func Minimize(g *graph.Graph, ranks *rank.Table, opts ...Option) (Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ranks == nil {
		return nil, ErrRanksNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	cfg := config{maxCrossingLoops: g.MaxCrossingLoops}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxCrossingLoops <= 0 {
		cfg.maxCrossingLoops = 100
	}

	splitLongEdges(g, ranks)
	cons := buildConstraints(g)

	m := initialMatrix(g, ranks)
	rs := m.Ranks()
	if len(rs) < 2 {
		return m, nil
	}

	for loop := 0; loop < cfg.maxCrossingLoops; loop++ {
		improved := false
		for i := 1; i < len(rs); i++ {
			if sweepRank(g, ranks, cons, m, rs[i-1], rs[i], true) {
				improved = true
			}
		}
		for i := len(rs) - 2; i >= 0; i-- {
			if sweepRank(g, ranks, cons, m, rs[i+1], rs[i], false) {
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return m, nil
}

// initialMatrix seeds every rank's row from the rank table's insertion
// order, dropping conjunct containers (which never occupy their own
// matrix slot; see representative).
func initialMatrix(g *graph.Graph, ranks *rank.Table) Matrix {
	m := make(Matrix)
	for _, r := range ranks.Ranks() {
		var row []string
		for _, id := range ranks.Nodes(r) {
			if v := g.Vertex(id); v != nil && v.IsConjunctNode {
				continue
			}
			row = append(row, id)
		}
		m[r] = row
	}

	return m
}

// neighborsAtRank returns v's representative-resolved neighbors (via
// in-edges when dir=="in", out-edges when dir=="out") that sit at rank r.
func neighborsAtRank(g *graph.Graph, ranks *rank.Table, v string, r rank.Rank, dir string) []string {
	var edges []*graph.Edge
	if dir == "in" {
		edges = g.InEdges(v)
	} else {
		edges = g.OutEdges(v)
	}

	var out []string
	for _, e := range edges {
		other := e.From
		if dir == "out" {
			other = e.To
		}
		other = representative(g, other)
		if rr, ok := ranks.Rank(other); ok && rr == r {
			out = append(out, other)
		}
	}

	return out
}

func indexOf(row []string) map[string]int {
	out := make(map[string]int, len(row))
	for i, id := range row {
		out[id] = i
	}

	return out
}

// sweepRank recomputes movableRank's row holding fixedRank's row fixed,
// accepting the recomputed order only if it strictly reduces the
// crossing count against fixedRank (spec 4.E.3-4.E.4).
func sweepRank(g *graph.Graph, ranks *rank.Table, cons *constraints, m Matrix, fixedRank, movableRank rank.Rank, movableIsSouth bool) bool {
	fixedRow := m[fixedRank]
	fixedIdx := indexOf(fixedRow)
	current := m[movableRank]

	dir := "in"
	if !movableIsSouth {
		dir = "out"
	}
	neighborsOf := func(v string) []string { return neighborsAtRank(g, ranks, v, fixedRank, dir) }
	candidate := sortLayer(cons, current, neighborsOf, fixedIdx)

	var northRank, southRank rank.Rank
	var oldNorth, oldSouth, newNorth, newSouth []string
	if movableIsSouth {
		northRank, southRank = fixedRank, movableRank
		oldNorth, oldSouth = fixedRow, current
		newNorth, newSouth = fixedRow, candidate
	} else {
		northRank, southRank = movableRank, fixedRank
		oldNorth, oldSouth = current, fixedRow
		newNorth, newSouth = candidate, fixedRow
	}

	edges := interRankEdges(g, ranks, northRank, southRank)
	oldCount := crossingsBetween(oldNorth, oldSouth, edges)
	newCount := crossingsBetween(newNorth, newSouth, edges)
	if newCount < oldCount {
		m[movableRank] = candidate

		return true
	}

	return false
}
