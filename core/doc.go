// Package core defines Graph, the in-memory representation of the
// synchronous circuit the retiming pipeline operates on.
//
// A Graph is a directed, edge-weighted, vertex-delayed structure over
// integer vertex IDs in [0, N). Vertex 0 is reserved as SOURCE. Edge
// weights are non-negative latch counts; vertex delays are immutable
// combinational propagation delays fixed at construction. Outgoing
// adjacency is stored per-vertex as a slice for cheap iteration (§4.2);
// callers needing all-pairs access build their own dense matrices
// (see package matrix) rather than asking Graph for one.
//
// Graph is mutated only by the retimer package, which rewrites edge
// weights in place once a feasible retiming vector is known. Per the
// single-threaded model (no parallelism, no shared mutable state across
// goroutines), Graph carries no internal locking.
package core
