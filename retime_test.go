package retime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/core"
	retime "github.com/katalvlaran/retime"
)

// buildChain builds SOURCE -> 1 -> 2 -> ... -> n, each internal edge
// carrying one register (weight 1), matching spec scenario S1's shape.
func buildChain(t *testing.T, delays []int64, controlSteps int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(delays, controlSteps)
	require.NoError(t, err)
	for v := 0; v < len(delays)-1; v++ {
		_, err := g.AddEdge(v, v+1, 1)
		require.NoError(t, err)
	}
	return g
}

func TestRun_FeasibleChain(t *testing.T) {
	g := buildChain(t, []int64{0, 2, 2, 2}, 1)

	res, err := retime.Run(g, retime.Config{ControlSteps: 1, ClockPeriod: 10})
	require.NoError(t, err)
	assert.NotNil(t, res.W)
	assert.NotNil(t, res.D)
	assert.NotNil(t, res.PCMatrix)
	assert.NotNil(t, res.PCGraph)
	assert.Len(t, res.Retiming, res.PCGraph.Side())
	assert.Len(t, res.Schedule, g.NumVertices())
	assert.True(t, g.AssertNonNegative())
}

func TestRun_CycleInGraph(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 1, 1}, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, 0)
	require.NoError(t, err)

	res, err := retime.Run(g, retime.Config{ControlSteps: 1, ClockPeriod: 10})
	assert.ErrorIs(t, err, retime.ErrCycleInGraph)
	assert.Nil(t, res)
}

func TestRun_InfeasibleClockPeriod(t *testing.T) {
	g := buildChain(t, []int64{0, 10, 10, 10}, 1)

	res, err := retime.Run(g, retime.Config{ControlSteps: 1, ClockPeriod: 1})
	assert.ErrorIs(t, err, retime.ErrNegativeCycleInPC)
	assert.Nil(t, res)
}

// TestRun_IdempotentOnSecondPass exercises the idempotence property
// from spec.md §8: retiming an already-retimed graph for the same
// clock period must be a no-op — the second pass's retiming vector
// shifts every edge weight by zero.
func TestRun_IdempotentOnSecondPass(t *testing.T) {
	g := buildChain(t, []int64{0, 2, 2, 2}, 1)
	cfg := retime.Config{ControlSteps: 1, ClockPeriod: 10}

	_, err := retime.Run(g, cfg)
	require.NoError(t, err)

	before := make([]int64, len(g.Edges()))
	for i, e := range g.Edges() {
		before[i] = e.Weight
	}

	_, err = retime.Run(g, cfg)
	require.NoError(t, err)

	for i, e := range g.Edges() {
		assert.Equal(t, before[i], e.Weight, "second retiming pass must not change edge %d's weight", i)
	}
}
