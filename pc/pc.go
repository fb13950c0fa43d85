package pc

import "github.com/katalvlaran/retime/matrix"

// Origin is G_pc's synthetic source vertex, index 0.
const Origin = 0

// VertexOf maps a main-graph vertex v to its G_pc counterpart.
func VertexOf(v int) int { return v + 1 }

// MainVertexOf is VertexOf's inverse: it maps a non-Origin G_pc vertex
// back to its main-graph vertex.
func MainVertexOf(k int) int { return k - 1 }

// Build derives PC (N×N) from W, D and clockPeriod, then lays out the
// (N+1)×(N+1) dense G_pc adjacency described in the package doc.
func Build(W, D *matrix.Dense, clockPeriod int64) (pcMatrix, pcGraph *matrix.Dense, err error) {
	n := W.Side()

	pcMatrix, err = matrix.NewDense(n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := W.MustAt(i, j)
			d := D.MustAt(i, j)
			v := w
			if d > clockPeriod {
				v = w - 1
			}
			pcMatrix.MustSet(i, j, v)
		}
	}

	pcGraph, err = matrix.NewFilled(n+1, matrix.INF)
	if err != nil {
		return nil, nil, err
	}
	for k := 1; k <= n; k++ {
		pcGraph.MustSet(Origin, k, 0)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Edge j+1 -> i+1 with weight PC[i][j] (§3's transpose).
			pcGraph.MustSet(VertexOf(j), VertexOf(i), pcMatrix.MustAt(i, j))
		}
	}

	return pcMatrix, pcGraph, nil
}
