// Package graph defines the directed compound graph used by the layout
// engine: vertices and edges carry typed input/output attribute records,
// a forest-shaped parent relation groups vertices into conjunct
// containers, and two argument-map extensions — conjunct vertices and
// warrant edges — are constructed through dedicated methods rather than
// raw AddEdge calls.
//
// Graph is safe for concurrent use: vertex and edge catalogs are guarded
// by independent locks (muVert, muEdgeAdj), the same split the rest of
// this module's ancestry uses to keep vertex-only reads from blocking on
// edge mutations. A single layout.Layout call itself is synchronous and
// single-threaded (the concurrency guarantee here is about building
// graphs from multiple goroutines before layout runs, not about the
// layout algorithm itself).
//
// Scratch fields are ordinary exported struct fields on Vertex/Edge
// rather than hidden behind getters: layer, order, coord and route all
// sit in the same module and read/write them directly. Vertex.Rank is
// layer's working rank; the finished ranking is handed on as a
// rank.Table.
package graph
