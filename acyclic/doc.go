// Package acyclic breaks cycles in a directed graph.Graph using the
// Eades-Lin-Smyth greedy feedback arc set heuristic: vertices are peeled
// off as sinks, sources, or (failing those) the vertex with maximum
// out-degree minus in-degree, building a linear order whose
// out-of-order edges form the feedback set. Those edges are reversed in
// place; self-loops are deleted outright. Both lists are returned so a
// later phase (package route) can restore the original orientation.
//
// Complexity: O(V*(V+E)) in this implementation (the peeling loop
// rescans the remaining vertex set each pass); acceptable for the
// argument-map scale this engine targets (tens to low hundreds of
// vertices), matching spec's non-goal of "global-optimum crossing
// minimization" style approximate heuristics over asymptotically tight
// ones.
package acyclic
