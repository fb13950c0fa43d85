package circuitgen

import (
	"fmt"

	"github.com/katalvlaran/retime/core"
)

const minChainVertices = 1

// Chain builds a linear circuit SOURCE -> 1 -> 2 -> ... -> n, one
// register edge per stage, matching spec scenario S1's shape. n is
// the number of internal (non-SOURCE) vertices.
func Chain(n int, opts ...Option) (*core.Graph, error) {
	if n < minChainVertices {
		return nil, fmt.Errorf("circuitgen.Chain: n=%d < min=%d: %w", n, minChainVertices, ErrTooFewVertices)
	}

	cfg := newGeneratorConfig(opts...)
	g, err := newCircuit(n, cfg)
	if err != nil {
		return nil, err
	}

	if err := wireSource(g, 1); err != nil {
		return nil, fmt.Errorf("circuitgen.Chain: wiring SOURCE: %w", err)
	}

	for v := 1; v < n; v++ {
		if _, err := g.AddEdge(v, v+1, cfg.randWeight()); err != nil {
			return nil, fmt.Errorf("circuitgen.Chain: AddEdge(%d->%d): %w", v, v+1, err)
		}
	}

	return g, nil
}
