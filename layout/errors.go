package layout

import "errors"

// ErrInvalidInput wraps graph-level validation failures: a nil graph or
// one not constructed as directed (spec's InvalidInput boundary).
var ErrInvalidInput = errors.New("layout: invalid input")

// ErrUnreachable indicates that a pipeline phase returned an error after
// the input had passed validation (for example layer.ErrBrokenWarrant),
// wrapping that phase's error. Returned, never panicked,
// per the engine's convention of not panicking from library code.
var ErrUnreachable = errors.New("layout: unreachable invariant violated")
