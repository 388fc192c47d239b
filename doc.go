// Package arglayout is a layered (Sugiyama-style) graph drawing engine
// specialized for argument maps: compound vertices, conjunct premise
// groups, and warrant edges alongside the usual directed edge set.
//
// The pipeline runs in five phases, one subpackage each:
//
//	acyclic/ — feedback-arc-set cycle removal
//	layer/   — longest-path + network-simplex ranking
//	order/   — two-level barycenter crossing minimization
//	coord/   — Brandes-Köpf coordinate assignment
//	route/   — Bézier emission and dummy-chain collapse
//
// graph/ holds the directed compound graph model all five phases share;
// rank/ holds the half-integer rank table layer/ and order/ pass
// between them. layout.Layout is the single entry point: it clones the
// caller's graph, runs all five phases against the clone, and writes
// the resulting coordinates and curve points back onto the original.
package arglayout
