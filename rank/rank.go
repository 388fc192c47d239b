package rank

import "fmt"

// Rank is a layer index, stored doubled so half-integer ranks (used by
// warrant sinks, which sit midway between two ordinary ranks) are exact
// integers rather than floats. Of returns the doubled value for a whole
// rank; Half returns it for source+0.5.
type Rank int32

// Of returns the Rank for the whole-number logical rank n.
func Of(n int) Rank { return Rank(2 * n) }

// Half returns r + 0.5 as a Rank.
func Half(r Rank) Rank { return r + 1 }

// IsHalf reports whether r represents a half-integer logical rank.
func (r Rank) IsHalf() bool { return r%2 != 0 }

// Float64 returns the logical (non-doubled) rank as a float64.
func (r Rank) Float64() float64 { return float64(r) / 2 }

// Int returns the logical rank truncated toward zero; callers should
// only use this on whole-integer ranks (IsHalf() == false).
func (r Rank) Int() int { return int(r) / 2 }

func (r Rank) String() string {
	if r.IsHalf() {
		return fmt.Sprintf("%.1f", r.Float64())
	}

	return fmt.Sprintf("%d", r.Int())
}

// Table is a bidirectional vertex<->Rank map. Inserting a vertex into a
// rank removes it from any prior rank; empty rank buckets are pruned so
// MinRank/MaxRank never observe stale entries.
type Table struct {
	vertexToRank map[string]Rank
	rankVertices map[Rank][]string
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		vertexToRank: make(map[string]Rank),
		rankVertices: make(map[Rank][]string),
	}
}

// Set assigns vertex v to rank r, removing it from any rank it
// previously occupied. Idempotent if v is already at r.
func (t *Table) Set(v string, r Rank) {
	if old, ok := t.vertexToRank[v]; ok {
		if old == r {
			return
		}
		t.removeFromBucket(old, v)
	}
	t.vertexToRank[v] = r
	t.rankVertices[r] = append(t.rankVertices[r], v)
}

// Delete removes v from the table entirely.
func (t *Table) Delete(v string) {
	r, ok := t.vertexToRank[v]
	if !ok {
		return
	}
	delete(t.vertexToRank, v)
	t.removeFromBucket(r, v)
}

func (t *Table) removeFromBucket(r Rank, v string) {
	bucket := t.rankVertices[r]
	for i, id := range bucket {
		if id == v {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(t.rankVertices, r)
	} else {
		t.rankVertices[r] = bucket
	}
}

// Rank returns the rank assigned to v and whether v is present.
func (t *Table) Rank(v string) (Rank, bool) {
	r, ok := t.vertexToRank[v]

	return r, ok
}

// Nodes returns the vertices assigned to rank r, in insertion order.
func (t *Table) Nodes(r Rank) []string {
	src := t.rankVertices[r]
	out := make([]string, len(src))
	copy(out, src)

	return out
}

// MinRank and MaxRank return the smallest/largest occupied rank. ok is
// false when the table is empty.
func (t *Table) MinRank() (r Rank, ok bool) { return t.extreme(func(a, b Rank) bool { return a < b }) }
func (t *Table) MaxRank() (r Rank, ok bool) { return t.extreme(func(a, b Rank) bool { return a > b }) }

func (t *Table) extreme(better func(a, b Rank) bool) (Rank, bool) {
	first := true
	var best Rank
	for r := range t.rankVertices {
		if first || better(r, best) {
			best = r
			first = false
		}
	}

	return best, !first
}

// Vertices returns every vertex currently assigned a rank, in no
// particular order.
func (t *Table) Vertices() []string {
	out := make([]string, 0, len(t.vertexToRank))
	for v := range t.vertexToRank {
		out = append(out, v)
	}

	return out
}

// Len reports how many vertices are assigned a rank.
func (t *Table) Len() int { return len(t.vertexToRank) }

// Ranks returns every occupied rank, unsorted.
func (t *Table) Ranks() []Rank {
	out := make([]Rank, 0, len(t.rankVertices))
	for r := range t.rankVertices {
		out = append(out, r)
	}

	return out
}
