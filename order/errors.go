package order

import "errors"

// ErrGraphNil indicates Minimize was given a nil graph.
var ErrGraphNil = errors.New("order: graph is nil")

// ErrRanksNil indicates Minimize was given a nil rank table.
var ErrRanksNil = errors.New("order: rank table is nil")

// ErrNotDirected indicates the graph was not constructed as directed.
var ErrNotDirected = errors.New("order: graph is not directed")
