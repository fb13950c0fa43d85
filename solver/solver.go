package solver

import (
	"errors"
	"math"

	"github.com/katalvlaran/retime/matrix"
)

// Infinite is the saturating "unreached" distance sentinel.
const Infinite = int64(math.MaxInt64) / 4

// ErrNegativeCycle is returned when G_pc contains a negative-weight
// cycle reachable from Origin — the retiming attempt is infeasible for
// the requested clock period (§7 NegativeCycleInPC).
var ErrNegativeCycle = errors.New("solver: negative cycle in PC graph")

// Solve runs Bellman–Ford from vertex 0 (Origin) over the dense pcGraph
// adjacency (pc.Build's output) and returns the distance vector r, or
// ErrNegativeCycle if a negative cycle is reachable from Origin.
func Solve(pcGraph *matrix.Dense) ([]int64, error) {
	n := pcGraph.Side()
	dist := make([]int64, n)
	for v := 1; v < n; v++ {
		dist[v] = Infinite
	}

	for pass := 0; pass < n-1; pass++ {
		relax(pcGraph, dist)
	}

	if relax(pcGraph, dist) {
		return nil, ErrNegativeCycle
	}

	return dist, nil
}

// relax performs one full pass over every (a, b) pair, reports whether
// any edge was still improvable (used as the post-pass negative-cycle
// check).
func relax(pcGraph *matrix.Dense, dist []int64) bool {
	n := pcGraph.Side()
	improved := false
	for a := 0; a < n; a++ {
		if dist[a] == Infinite {
			continue
		}
		for b := 0; b < n; b++ {
			w := pcGraph.MustAt(a, b)
			if w >= matrix.INF {
				continue // no edge a->b (or a degenerate, non-binding one)
			}
			if cand := dist[a] + w; cand < dist[b] {
				dist[b] = cand
				improved = true
			}
		}
	}

	return improved
}
