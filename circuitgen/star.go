package circuitgen

import (
	"fmt"

	"github.com/katalvlaran/retime/core"
)

const minStarVertices = 2

// Star builds a hub-and-spoke circuit: SOURCE feeds hub vertex 1,
// which fans out to n-1 leaves (2..n).
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("circuitgen.Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	cfg := newGeneratorConfig(opts...)
	g, err := newCircuit(n, cfg)
	if err != nil {
		return nil, err
	}

	const hub = 1
	if err := wireSource(g, hub); err != nil {
		return nil, fmt.Errorf("circuitgen.Star: wiring SOURCE: %w", err)
	}

	for leaf := hub + 1; leaf <= n; leaf++ {
		if _, err := g.AddEdge(hub, leaf, cfg.randWeight()); err != nil {
			return nil, fmt.Errorf("circuitgen.Star: AddEdge(%d->%d): %w", hub, leaf, err)
		}
	}

	return g, nil
}
