package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/core"
	"github.com/katalvlaran/retime/schedule"
)

func TestBuild_SourceSeededWithOwnDelay(t *testing.T) {
	g, err := core.NewGraph([]int64{7, 0}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 2)

	s, err := schedule.Build(g)
	require.NoError(t, err)
	assert.EqualValues(t, 7, s[0])
	// SOURCE->1 carries control_steps (1), not the 2 passed to AddEdge.
	assert.EqualValues(t, 8, s[1])
}

func TestBuild_UnreachableStaysZero(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 0, 0}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 3)
	// vertex 2 has no incoming edge from SOURCE's BFS tree.

	s, err := schedule.Build(g)
	require.NoError(t, err)
	assert.EqualValues(t, 0, s[2])
}

func TestBuild_FirstVisitWins(t *testing.T) {
	g, err := core.NewGraph([]int64{0, 0, 0}, 1)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 5)
	_, _ = g.AddEdge(1, 2, 1)

	s, err := schedule.Build(g)
	require.NoError(t, err)
	// BFS visits 2 via the direct SOURCE->2 edge before 1->2, since 1
	// and 2 are both enqueued from SOURCE in the same round. Both SOURCE
	// edges carry control_steps (1), so the direct edge gives s[2] = 1,
	// while the path through 1 would give 2.
	assert.EqualValues(t, 1, s[2])
}
