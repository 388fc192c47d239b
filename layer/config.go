package layer

// Option configures a single Assign call.
type Option func(*config)

type config struct {
	maxRankingLoops int
}

// WithMaxRankingLoops overrides the iteration cap for cut-value
// exchange, taken from g.MaxRankingLoops by default.
func WithMaxRankingLoops(n int) Option {
	return func(c *config) { c.maxRankingLoops = n }
}
