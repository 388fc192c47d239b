package layout

import "github.com/katalvlaran/arglayout/graph"

// Option configures a single Layout call.
type Option func(*config)

type config struct {
	defaultWidth, defaultHeight float64
}

// defaultConfig seeds config from the graph's own Width/Height fields,
// falling back to the spec's 300x100 when the caller left them unset.
func defaultConfig(g *graph.Graph) config {
	cfg := config{defaultWidth: g.Width, defaultHeight: g.Height}
	if cfg.defaultWidth <= 0 {
		cfg.defaultWidth = 300
	}
	if cfg.defaultHeight <= 0 {
		cfg.defaultHeight = 100
	}

	return cfg
}

// WithDefaultSize overrides the width/height applied to any vertex whose
// own Attrs.Width/Height is unset (<=0).
func WithDefaultSize(w, h float64) Option {
	return func(c *config) {
		c.defaultWidth, c.defaultHeight = w, h
	}
}
