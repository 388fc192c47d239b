// Package route implements the router (spec component G): Bézier
// control-point emission for every edge, long-edge dummy-chain
// collapsing, and restoration of the self-loops and reversed edges the
// cycle remover set aside.
package route
