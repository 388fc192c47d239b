package order

import (
	"sort"

	"github.com/katalvlaran/arglayout/rank"
)

// Matrix gives the left-to-right vertex order of every occupied rank.
type Matrix map[rank.Rank][]string

// Ranks returns the occupied ranks in ascending order.
func (m Matrix) Ranks() []rank.Rank {
	out := make([]rank.Rank, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Index returns v's position within its rank's row, or -1 if v is not
// in row.
func Index(row []string, v string) int {
	for i, id := range row {
		if id == v {
			return i
		}
	}

	return -1
}
