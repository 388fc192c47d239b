package layer

import (
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/rank"
)

// Assign computes a rank table over g: conjunct clusters and warrant
// structures are merged out of the working graph, longest-path and
// network-simplex ranking run on what remains, and both structures are
// restored before the table is built. Every vertex present in g when
// Assign returns also has Layout.Y set to rank x g.RankSep.
//
// Returns ErrIterationCapReached (with an otherwise-usable table) if
// cut-value iteration did not converge within MaxRankingLoops.
func Assign(g *graph.Graph, opts ...Option) (*rank.Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	cfg := config{maxRankingLoops: g.MaxRankingLoops}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxRankingLoops <= 0 {
		cfg.maxRankingLoops = 100
	}

	conjStashes := mergeConjuncts(g)
	warrStashes, err := mergeWarrants(g)
	if err != nil {
		return nil, err
	}

	initialRanking(g)
	capReached := networkSimplex(g, cfg.maxRankingLoops)
	normalizeRanks(g)
	balance(g)

	splitConjuncts(g, conjStashes)
	splitWarrants(g, warrStashes)

	table := rank.New()
	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		r := rank.Rank(v.Rank)
		table.Set(id, r)
		v.Layout.Y = r.Float64() * g.RankSep
	}

	if capReached {
		return table, ErrIterationCapReached
	}

	return table, nil
}
