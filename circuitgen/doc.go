// Package circuitgen generates synthetic circuit graphs for
// experimentation and tests: chain, grid, star, wheel, and
// random-sparse topologies, each with per-vertex delays drawn from a
// configurable range and SOURCE (§3) wired to one entry vertex (vertex
// 1, or the top-left corner for Grid). In RandomSparse, other vertices
// may be left with no incoming edge.
//
// The option/config shape (functional options resolving into an
// immutable generatorConfig, a seeded *rand.Rand for determinism)
// follows the teacher's builder package (builder/config.go,
// builder/options.go); the topology constructors below are this
// domain's rewrite of builder's Path/Grid/Star/Wheel/RandomSparse for
// core.Graph's fixed-size, per-vertex-delay vertex model rather than
// lvlath's string-keyed incrementally-grown graph.
package circuitgen
