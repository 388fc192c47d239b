package coord

import (
	"sort"

	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/order"
	"github.com/katalvlaran/arglayout/rank"
)

// bias is one of the four {left,right}x{down,up} sweep orders (spec 4.F.3).
type bias struct {
	vertical   string // "down" or "up"
	horizontal string // "left" or "right"
}

var biases = []bias{
	{vertical: "down", horizontal: "left"},
	{vertical: "down", horizontal: "right"},
	{vertical: "up", horizontal: "left"},
	{vertical: "up", horizontal: "right"},
}

// alignVertical runs one bias pass over g (a private clone), linking
// each vertex into its median neighbor's block when the connecting
// edge is unconflicted and the link keeps the scan monotone.
func alignVertical(g *graph.Graph, m order.Matrix, b bias) {
	rs := m.Ranks()
	if b.vertical == "up" {
		reverseRanks(rs)
	}

	for i := 1; i < len(rs); i++ {
		prevRow := m[rs[i-1]]
		row := orderedRow(m[rs[i]], b.horizontal)
		prevPos := indexOf(prevRow)

		watermark := -1
		if b.horizontal == "right" {
			watermark = len(prevRow)
		}

		for _, v := range row {
			neighbors := adjacentRow(g, v, prevRow, b.vertical)
			med := medianNeighbor(neighbors, prevPos, b.horizontal)
			if med == "" {
				continue
			}
			e := edgeBetween(g, v, med, b.vertical)
			if e == nil || e.IsConflicted {
				continue
			}
			pos := prevPos[med]
			if (b.horizontal == "left" && pos > watermark) || (b.horizontal == "right" && pos < watermark) {
				linkBlock(g, v, med)
				watermark = pos
			}
		}
	}
}

func adjacentRow(g *graph.Graph, v string, prevRow []string, vertical string) []string {
	prevSet := make(map[string]bool, len(prevRow))
	for _, id := range prevRow {
		prevSet[id] = true
	}

	var edges []*graph.Edge
	if vertical == "down" {
		edges = g.InEdges(v)
	} else {
		edges = g.OutEdges(v)
	}

	var out []string
	for _, e := range edges {
		other := e.From
		if vertical != "down" {
			other = e.To
		}
		if prevSet[other] {
			out = append(out, other)
		}
	}

	return out
}

// medianNeighbor picks the left or right median of neighbors ordered by
// their position in the fixed row (spec 4.F.3).
func medianNeighbor(neighbors []string, prevPos map[string]int, horizontal string) string {
	if len(neighbors) == 0 {
		return ""
	}
	sorted := append([]string(nil), neighbors...)
	sort.Slice(sorted, func(i, j int) bool { return prevPos[sorted[i]] < prevPos[sorted[j]] })
	if len(sorted) == 1 {
		return sorted[0]
	}
	lo, hi := (len(sorted)-1)/2, len(sorted)/2
	if horizontal == "left" {
		return sorted[lo]
	}

	return sorted[hi]
}

func edgeBetween(g *graph.Graph, v, other, vertical string) *graph.Edge {
	if vertical == "down" {
		for _, e := range g.InEdges(v) {
			if e.From == other {
				return e
			}
		}

		return nil
	}
	for _, e := range g.OutEdges(v) {
		if e.To == other {
			return e
		}
	}

	return nil
}

// findRoot follows BlockRoot to its fixed point.
func findRoot(g *graph.Graph, v string) string {
	for {
		bv := g.Vertex(v).BlockRoot
		if bv == "" || bv == v {
			return v
		}
		v = bv
	}
}

// linkBlock joins v into med's block, splicing v right after med in
// the block's circular NextBlockNode list.
func linkBlock(g *graph.Graph, v, med string) {
	root := findRoot(g, med)
	vv := g.Vertex(v)
	vv.BlockRoot = root

	mv := g.Vertex(med)
	next := mv.NextBlockNode
	mv.NextBlockNode = v
	vv.NextBlockNode = next
}

func orderedRow(row []string, horizontal string) []string {
	out := append([]string(nil), row...)
	if horizontal == "right" {
		reverseStrings(out)
	}

	return out
}

func reverseRanks(rs []rank.Rank) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
