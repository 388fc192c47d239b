// Package coord implements the coordinate assigner (spec component F):
// a Brandes-Köpf style four-pass vertical alignment and horizontal
// compaction, averaged over the four {left,right}x{down,up} biases via
// median-of-four balancing.
//
// Conjunct containers are re-merged with their children for the
// duration of alignment/compaction (their own graph.Graph.Clone, one
// per bias, keeps each pass's BlockRoot/NextBlockNode bookkeeping from
// leaking into the others) and split back out at the end, laid out
// left-to-right from the container's final left edge.
package coord
