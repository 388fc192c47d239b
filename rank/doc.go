// Package rank implements the layout engine's Rank Table: a bidirectional
// map between vertex IDs and ranks, where a rank may be a half-integer
// (to seat a warrant sink midway between two ordinary ranks). Ranks are
// represented as Rank, an int32 holding twice the logical rank, so
// comparisons and arithmetic stay exact integers instead of drifting
// floats.
package rank
