package coord

import "errors"

// ErrGraphNil indicates Assign was given a nil graph.
var ErrGraphNil = errors.New("coord: graph is nil")

// ErrRanksNil indicates Assign was given a nil rank table.
var ErrRanksNil = errors.New("coord: rank table is nil")

// ErrMatrixNil indicates Assign was given a nil order matrix.
var ErrMatrixNil = errors.New("coord: order matrix is nil")

// ErrNotDirected indicates the graph was not constructed as directed.
var ErrNotDirected = errors.New("coord: graph is not directed")
