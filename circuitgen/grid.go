package circuitgen

import (
	"fmt"

	"github.com/katalvlaran/retime/core"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal circuit: internal vertex
// (r, c) is numbered 1 + r*cols + c, with register edges to its right
// and bottom neighbors, matching the teacher's 4-neighborhood Grid
// constructor (builder/impl_grid.go) adapted to integer vertex IDs.
// SOURCE feeds the top-left corner (r=0, c=0).
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("circuitgen.Grid: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}

	n := rows * cols
	cfg := newGeneratorConfig(opts...)
	g, err := newCircuit(n, cfg)
	if err != nil {
		return nil, err
	}

	id := func(r, c int) int { return 1 + r*cols + c }

	if err := wireSource(g, id(0, 0)); err != nil {
		return nil, fmt.Errorf("circuitgen.Grid: wiring SOURCE: %w", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				if _, err := g.AddEdge(u, id(r, c+1), cfg.randWeight()); err != nil {
					return nil, fmt.Errorf("circuitgen.Grid: AddEdge(%d->%d): %w", u, id(r, c+1), err)
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(u, id(r+1, c), cfg.randWeight()); err != nil {
					return nil, fmt.Errorf("circuitgen.Grid: AddEdge(%d->%d): %w", u, id(r+1, c), err)
				}
			}
		}
	}

	return g, nil
}
