package circuitgen

import (
	"fmt"

	"github.com/katalvlaran/retime/core"
)

const minWheelRing = 3

// Wheel builds a hub vertex (1) fed by SOURCE, connected to every
// vertex of an (n-1)-cycle ring (2..n), plus the ring edges
// themselves — the spoke-and-rim shape of the teacher's Wheel
// constructor (builder/impl_wheel.go), adapted to a fixed-size
// circuit graph. n is the total internal vertex count, so the ring
// has n-1 vertices and n-1 ≥ minWheelRing.
func Wheel(n int, opts ...Option) (*core.Graph, error) {
	ringSize := n - 1
	if ringSize < minWheelRing {
		return nil, fmt.Errorf("circuitgen.Wheel: ring size=%d < min=%d: %w", ringSize, minWheelRing, ErrTooFewVertices)
	}

	cfg := newGeneratorConfig(opts...)
	g, err := newCircuit(n, cfg)
	if err != nil {
		return nil, err
	}

	const hub = 1
	if err := wireSource(g, hub); err != nil {
		return nil, fmt.Errorf("circuitgen.Wheel: wiring SOURCE: %w", err)
	}

	ring := make([]int, ringSize)
	for i := range ring {
		ring[i] = hub + 1 + i
	}

	for _, rim := range ring {
		if _, err := g.AddEdge(hub, rim, cfg.randWeight()); err != nil {
			return nil, fmt.Errorf("circuitgen.Wheel: AddEdge(%d->%d): %w", hub, rim, err)
		}
	}
	for i, rim := range ring {
		next := ring[(i+1)%len(ring)]
		if _, err := g.AddEdge(rim, next, cfg.randWeight()); err != nil {
			return nil, fmt.Errorf("circuitgen.Wheel: AddEdge(%d->%d): %w", rim, next, err)
		}
	}

	return g, nil
}
