package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/core"
)

func TestNewGraph_RejectsNegativeDelay(t *testing.T) {
	_, err := core.NewGraph([]int64{0, -1, 2}, 1)
	assert.ErrorIs(t, err, core.ErrNegativeDelay)
}

func TestAddEdge_OverridesSourceWeight(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 3, 3}, 5)
	require.NoError(t, err)

	e, err := g.AddEdge(core.SOURCE, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, e.Weight, "SOURCE-outgoing edges adopt control_steps regardless of input weight")

	e2, err := g.AddEdge(1, 2, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, e2.Weight)
}

func TestAddEdge_RejectsNegativeWeight(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 0}, 1)
	require.NoError(t, err)

	_, err = g.AddEdge(1, 0, -3)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestAddEdge_RejectsOutOfRange(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 0}, 1)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 5, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestOutEdgesAndWeightAt(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 3, 3, 3}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(2, 3, 0)

	out, err := g.OutEdges(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].To)

	w, err := g.WeightAt(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, w)

	_, err = g.WeightAt(1, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestSetWeightAndAssertNonNegative(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 1}, 1)
	require.NoError(t, err)
	e, err := g.AddEdge(1, 0, 0)
	require.NoError(t, err)

	assert.True(t, g.AssertNonNegative())
	g.SetWeight(e, -1)
	assert.False(t, g.AssertNonNegative())
}
