package core

import "errors"

// SOURCE is the reserved entry-vertex index. Edges leaving SOURCE carry
// control_steps latches regardless of what NewGraph was told (§3).
const SOURCE = 0

// ErrVertexOutOfRange indicates a vertex index outside [0, N).
var ErrVertexOutOfRange = errors.New("core: vertex out of range")

// ErrNegativeDelay indicates a negative per-vertex delay was supplied;
// delays are combinational propagation times and must be non-negative.
var ErrNegativeDelay = errors.New("core: vertex delay must be non-negative")

// ErrNegativeWeight indicates a negative edge weight was supplied; edge
// weights are latch counts and must be non-negative (§3 invariant 1).
var ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

// ErrEdgeNotFound indicates WeightAt was asked about a pair with no edge.
var ErrEdgeNotFound = errors.New("core: edge not found")
