package order

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/rank"
)

// accumulator implements the Barth-Mutzel-Jünger bilayer crossing count
// (spec 4.E.5) over a binary accumulation tree sized to the south
// layer. touched records which tree indices were written during the
// current count call so reset can zero exactly those instead of the
// whole array.
type accumulator struct {
	counts    []int
	touched   *bitset.BitSet
	firstLeaf uint
}

func newAccumulator(southSize int) *accumulator {
	leaves := 1
	for leaves < southSize {
		leaves *= 2
	}
	treeSize := 2*leaves - 1
	if treeSize < 1 {
		treeSize = 1
	}

	return &accumulator{
		counts:    make([]int, treeSize),
		touched:   bitset.New(uint(treeSize)),
		firstLeaf: uint(leaves - 1),
	}
}

func (a *accumulator) reset() {
	for i, ok := a.touched.NextSet(0); ok; i, ok = a.touched.NextSet(i + 1) {
		a.counts[i] = 0
	}
	a.touched.ClearAll()
}

// count returns the number of crossings implied by southIdx, the south
// layer position of each inter-layer edge's south endpoint, given in
// north-index order with ties broken by south index.
func (a *accumulator) count(southIdx []int) int {
	a.reset()
	crossings := 0
	for _, k := range southIdx {
		idx := uint(k) + a.firstLeaf
		a.counts[idx]++
		a.touched.Set(idx)
		for idx > 0 {
			if idx%2 == 1 {
				crossings += a.counts[idx+1]
			}
			idx = (idx - 1) / 2
			a.counts[idx]++
			a.touched.Set(idx)
		}
	}

	return crossings
}

// interRankEdges returns every edge whose representative endpoints sit
// exactly on (northRank, southRank), conjunct containers resolved to
// their first child per representative.
func interRankEdges(g *graph.Graph, ranks *rank.Table, northRank, southRank rank.Rank) [][2]string {
	var out [][2]string
	for _, e := range g.Edges() {
		from := representative(g, e.From)
		to := representative(g, e.To)
		rf, ok1 := ranks.Rank(from)
		rt, ok2 := ranks.Rank(to)
		if !ok1 || !ok2 || rf != northRank || rt != southRank {
			continue
		}
		out = append(out, [2]string{from, to})
	}

	return out
}

// crossingsBetween counts crossings between a north order and a south
// order given the inter-layer edges connecting them.
func crossingsBetween(north, south []string, edges [][2]string) int {
	northIdx := make(map[string]int, len(north))
	for i, id := range north {
		northIdx[id] = i
	}
	southIdx := make(map[string]int, len(south))
	for i, id := range south {
		southIdx[id] = i
	}

	type pair struct{ n, s int }
	pairs := make([]pair, 0, len(edges))
	for _, e := range edges {
		ni, ok1 := northIdx[e[0]]
		si, ok2 := southIdx[e[1]]
		if !ok1 || !ok2 {
			continue
		}
		pairs = append(pairs, pair{ni, si})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].n != pairs[j].n {
			return pairs[i].n < pairs[j].n
		}

		return pairs[i].s < pairs[j].s
	})

	southSeq := make([]int, len(pairs))
	for i, p := range pairs {
		southSeq[i] = p.s
	}

	return newAccumulator(len(south)).count(southSeq)
}

// representative resolves a conjunct container to its first child for
// ordering purposes: containers have no matrix slot of their own (spec
// 4.F.1 realizes them as a bounding box around their children, not as a
// separately drawn vertex), so an edge incident to one is attributed to
// the block it anchors.
func representative(g *graph.Graph, id string) string {
	if v := g.Vertex(id); v != nil && v.IsConjunctNode {
		if kids := g.Children(id); len(kids) > 0 {
			return kids[0]
		}
	}

	return id
}
