package coord

import (
	"math"
	"sort"

	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/order"
	"github.com/katalvlaran/arglayout/rank"
)

// Assign computes every vertex's x-coordinate via Brandes-Köpf
// alignment (spec 4.F): four independent biased passes, each on its own
// graph.Graph.Clone, reconciled by aligning the narrowest pass's bounds
// and averaging the middle two of each vertex's four candidate x values.
// y is left untouched (already set by layer.Assign).
func Assign(g *graph.Graph, ranks *rank.Table, m order.Matrix, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if ranks == nil {
		return ErrRanksNil
	}
	if m == nil {
		return ErrMatrixNil
	}
	if !g.Directed() {
		return ErrNotDirected
	}

	cfg := config{nodeSep: g.NodeSep}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nodeSep <= 0 {
		cfg.nodeSep = 100
	}

	stashes := mergeConjuncts(g, m, cfg.nodeSep)
	markType1Conflicts(g, m)

	if len(g.Vertices()) == 0 {
		splitConjuncts(g, stashes, cfg.nodeSep)

		return nil
	}

	type pass struct {
		b          bias
		xs         map[string]float64
		minX, maxX float64
	}
	passes := make([]pass, len(biases))
	for i, b := range biases {
		clone := g.Clone()
		alignVertical(clone, m, b)
		compact(clone, m, cfg.nodeSep, b)

		xs := make(map[string]float64, len(clone.Vertices()))
		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, id := range clone.Vertices() {
			v := clone.Vertex(id)
			xs[id] = v.Layout.X
			half := v.Attrs.Width / 2
			if v.Layout.X-half < minX {
				minX = v.Layout.X - half
			}
			if v.Layout.X+half > maxX {
				maxX = v.Layout.X + half
			}
		}
		passes[i] = pass{b: b, xs: xs, minX: minX, maxX: maxX}
	}

	best := 0
	for i := range passes {
		if passes[i].maxX-passes[i].minX < passes[best].maxX-passes[best].minX {
			best = i
		}
	}
	target := passes[best]

	for i := range passes {
		p := &passes[i]
		var shift float64
		if p.b.horizontal == "left" {
			shift = target.minX - p.minX
		} else {
			shift = target.maxX - p.maxX
		}
		for id := range p.xs {
			p.xs[id] += shift
		}
	}

	for _, id := range g.Vertices() {
		vals := make([]float64, 0, len(passes))
		for _, p := range passes {
			if x, ok := p.xs[id]; ok {
				vals = append(vals, x)
			}
		}
		sort.Float64s(vals)
		g.Vertex(id).Layout.X = medianOfFour(vals)
	}

	splitConjuncts(g, stashes, cfg.nodeSep)

	return nil
}

func medianOfFour(vals []float64) float64 {
	switch len(vals) {
	case 0:
		return 0
	case 4:
		return (vals[1] + vals[2]) / 2
	default:
		sum := 0.0
		for _, v := range vals {
			sum += v
		}

		return sum / float64(len(vals))
	}
}
