package route

import "errors"

// ErrGraphNil indicates Finalize was given a nil graph.
var ErrGraphNil = errors.New("route: graph is nil")

// ErrNotDirected indicates the graph was not constructed as directed.
var ErrNotDirected = errors.New("route: graph is not directed")
