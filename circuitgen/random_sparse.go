package circuitgen

import (
	"fmt"

	"github.com/katalvlaran/retime/core"
)

const minRandomSparseVertices = 1

// RandomSparse builds an Erdős–Rényi-style circuit over n internal
// vertices: SOURCE feeds vertex 1, and each ordered pair (i, j) with
// i < j gets a register edge independently with probability p,
// following the teacher's RandomSparse trial order (ascending i, then
// ascending j). Restricting edges to i < j guarantees the result is
// acyclic, which is the common case real combinational/sequential
// netlists land in.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("circuitgen.RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("circuitgen.RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	cfg := newGeneratorConfig(opts...)
	g, err := newCircuit(n, cfg)
	if err != nil {
		return nil, err
	}

	if err := wireSource(g, 1); err != nil {
		return nil, fmt.Errorf("circuitgen.RandomSparse: wiring SOURCE: %w", err)
	}

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if cfg.rng.Float64() < p {
				if _, err := g.AddEdge(i, j, cfg.randWeight()); err != nil {
					return nil, fmt.Errorf("circuitgen.RandomSparse: AddEdge(%d->%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
