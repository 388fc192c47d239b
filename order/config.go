package order

// Option configures a single Minimize call.
type Option func(*config)

type config struct {
	maxCrossingLoops int
}

// WithMaxCrossingLoops overrides the sweep iteration cap, taken from
// g.MaxCrossingLoops by default.
func WithMaxCrossingLoops(n int) Option {
	return func(c *config) { c.maxCrossingLoops = n }
}
