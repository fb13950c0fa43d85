package cyclecheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/cyclecheck"
)

func TestHasZeroWeightCycle_Acyclic(t *testing.T) {
	// S1: trivial chain 0->1->2->3->4, all weight 0.
	g, err := core.NewGraph([]int64{0, 3, 3, 3, 0}, 1)
	require.NoError(t, err)
	for v := 0; v < 4; v++ {
		_, err = g.AddEdge(v, v+1, 0)
		require.NoError(t, err)
	}

	assert.False(t, cyclecheck.HasZeroWeightCycle(g))
}

func TestHasZeroWeightCycle_Detects(t *testing.T) {
	// S4: 0->1, 1->2, 2->1, all weight 0.
	g, err := core.NewGraph([]int64{0, 1, 1}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 1, 0)

	assert.True(t, cyclecheck.HasZeroWeightCycle(g))
}

func TestHasZeroWeightCycle_NonZeroEdgesIgnored(t *testing.T) {
	// A cycle that only closes through a non-zero-weight edge is not a
	// zero-weight cycle and must not be reported.
	g, err := core.NewGraph([]int64{0, 1, 1}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 1, 1)

	assert.False(t, cyclecheck.HasZeroWeightCycle(g))
}
