package coord

// Option configures a single Assign call.
type Option func(*config)

type config struct {
	nodeSep float64
}

// WithNodeSep overrides the horizontal minimum spacing, taken from
// g.NodeSep by default.
func WithNodeSep(n float64) Option {
	return func(c *config) { c.nodeSep = n }
}
