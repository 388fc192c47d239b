// Package order implements the crossing minimizer (spec component E):
// it splits long edges into unit-length dummy chains, groups conjunct
// clusters and warrant columns into contiguity constraints that keep
// them together, then runs an iterated constrained-barycenter sweep
// to produce a left-to-right Matrix per rank.
//
// The Barth-Mutzel-Jünger accumulation tree (crossing.go) is built on
// github.com/bits-and-blooms/bitset: it tracks which tree-node indices
// were touched while accumulating one layer pair so the next count call
// can reset in O(touched) instead of zeroing the whole array, the same
// compact-array discipline a popcount-indexed trie applies to its node
// arrays.
//
// Conjunct contiguity and warrant-column adjacency (spec 4.E.2) are
// known statically from the graph's conjunct/warrant structure, so
// rather than discovering them through repeated violated-constraint
// scans, this package precomputes them once as union-find groups
// (barycenter.go) that the sweep sorts as a single unit.
package order
