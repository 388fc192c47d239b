package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arglayout/acyclic"
	"github.com/katalvlaran/arglayout/coord"
	"github.com/katalvlaran/arglayout/graph"
	"github.com/katalvlaran/arglayout/layer"
	"github.com/katalvlaran/arglayout/order"
	"github.com/katalvlaran/arglayout/route"
)

// Result carries diagnostics from a Layout call. The coordinates and
// Bézier points themselves are written directly onto the caller's graph.
type Result struct {
	// Warnings records non-fatal iteration-cap overruns (layer's
	// ErrIterationCapReached); the produced layout is still usable.
	Warnings []string
}

// Layout runs the full pipeline (cycle removal, layering, crossing
// minimization, coordinate assignment, routing) against a working copy
// of g with default vertex sizes merged in, then writes the resulting
// x/y coordinates and edge control points back onto g itself. g's own
// vertex and edge set is never structurally changed: dummy vertices and
// temporarily reversed/deleted edges created during the pipeline exist
// only on the working copy.
func Layout(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidInput)
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: graph is not directed", ErrInvalidInput)
	}

	cfg := defaultConfig(g)
	for _, opt := range opts {
		opt(&cfg)
	}

	work := g.Clone()
	applyDefaultSizes(work, cfg)

	res := &Result{}

	removed, err := acyclic.RemoveCycles(work)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	ranks, err := layer.Assign(work)
	if err != nil {
		if errors.Is(err, layer.ErrIterationCapReached) {
			res.Warnings = append(res.Warnings, err.Error())
		} else {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
	}
	if ranks == nil {
		return nil, fmt.Errorf("%w: layer.Assign returned no rank table", ErrUnreachable)
	}

	matrix, err := order.Minimize(work, ranks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if err := coord.Assign(work, ranks, matrix); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if err := route.Finalize(work, removed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	writeBack(g, work)

	return res, nil
}

// applyDefaultSizes fills in Width/Height on every vertex that left
// them unset (spec.md §6: "width (default 300), height (default 100)").
func applyDefaultSizes(work *graph.Graph, cfg config) {
	for _, id := range work.Vertices() {
		v := work.Vertex(id)
		if v.Attrs.Width <= 0 {
			v.Attrs.Width = cfg.defaultWidth
		}
		if v.Attrs.Height <= 0 {
			v.Attrs.Height = cfg.defaultHeight
		}
	}
}

// writeBack copies x/y and control points from the working copy onto
// the caller's original vertices and edges, matched by ID/From-To-Name.
// Dummy vertices and the working copy's scratch state are discarded.
func writeBack(g, work *graph.Graph) {
	for _, id := range g.Vertices() {
		src := work.Vertex(id)
		if src == nil {
			continue
		}
		g.Vertex(id).Layout = src.Layout
	}
	for _, e := range g.Edges() {
		src := work.Edge(e.From, e.To, e.Name)
		if src == nil {
			continue
		}
		e.Layout = src.Layout
	}
}
