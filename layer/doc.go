// Package layer assigns every vertex of a graph.Graph an integer rank,
// minimizing weighted edge length subject to per-edge minlen
// constraints, via longest-path initial ranking, tight-tree
// construction, and network-simplex cut-value iteration. Conjunct
// clusters and warrant structures are removed from the working graph
// before ranking and restored afterward, the former at the container's
// rank, the latter at half-integer ranks between their underlying
// edge's endpoints.
//
// The simplex machinery is a port of godagre's network_simplex.go
// (see the retrieved pack), generalized to the module's doubled-int32
// rank.Rank representation and corrected to use postorder
// Number/MinSubtreeNumber range tests for subtree membership rather
// than the reference's ad hoc Lim/Low fields. Like the reference, cut
// values and tree numbering are recomputed in full after every
// exchange rather than incrementally restricted to the least common
// ancestor's subtree; at the vertex counts this engine targets the
// difference is not measurable.
package layer
