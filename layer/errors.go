package layer

import "errors"

// ErrGraphNil indicates Assign was given a nil graph.
var ErrGraphNil = errors.New("layer: graph is nil")

// ErrNotDirected indicates the graph was not constructed as directed.
var ErrNotDirected = errors.New("layer: graph is not directed")

// ErrBrokenWarrant indicates a vertex is flagged IsWarrantSink but no
// edge in the graph matches its "u -> w" identifier — a broken
// invariant that should not occur on valid input built through
// graph.SetWarrantEdge.
var ErrBrokenWarrant = errors.New("layer: warrant sink has no underlying edge")

// ErrIterationCapReached is returned alongside a still-usable rank
// table when the cut-value iteration hits MaxRankingLoops before
// converging. Not a failure: callers should treat it as a warning
// (layout.Layout surfaces it via Result.Warnings) rather than discard
// the table.
var ErrIterationCapReached = errors.New("layer: maxrankingloops reached before convergence")
