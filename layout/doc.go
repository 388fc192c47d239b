// Package layout is the top-level entry point of the layered
// (Sugiyama-style) layout engine: cycle removal, layering, crossing
// minimization, coordinate assignment, and routing, run in sequence
// against a working copy of the caller's graph, with the resulting
// coordinates and Bézier control points written back onto the original.
//
// Key features:
//   - Layout(g, opts...): runs the full C->D->E->F->G pipeline
//   - Default vertex size (300x100) merged in before layering
//   - Non-fatal iteration-cap overruns surfaced via Result.Warnings
//     instead of failing the call
//
// Errors:
//
//   - ErrInvalidInput  if g is nil or not directed
//   - ErrUnreachable   if an internal invariant breaks partway through
//     the pipeline (a programmer error in one of the phase packages,
//     not a property of the caller's input)
package layout
