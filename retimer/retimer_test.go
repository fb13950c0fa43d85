package retimer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/retimer"
)

func TestApply_ShiftsWeights(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 3}, 1)
	require.NoError(t, err)
	e, err := g.AddEdge(0, 1, 0)
	require.NoError(t, err)

	// r indexed by G_pc vertex: Origin=0, vertex0->1, vertex1->2.
	r := []int64{0, 0, -1}
	require.NoError(t, retimer.Apply(g, r))

	// The SOURCE-outgoing edge starts at control_steps (1), not at the 0 passed in.
	assert.EqualValues(t, 1+r[2]-r[1], e.Weight)
}

func TestApply_RejectsShortVector(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 0, 0}, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, retimer.Apply(g, []int64{0, 0}), retimer.ErrVectorTooShort)
}

func TestApply_Idempotent_WhenVectorZero(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 1, 1}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)
	_, _ = g.AddEdge(1, 2, 3)

	require.NoError(t, retimer.Apply(g, []int64{0, 0, 0, 0}))

	w1, _ := g.WeightAt(0, 1)
	w2, _ := g.WeightAt(1, 2)
	assert.EqualValues(t, 1, w1, "SOURCE-outgoing edge keeps control_steps")
	assert.EqualValues(t, 3, w2)
}
