package circuitgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/retime/circuitgen"
	"github.com/katalvlaran/retime/core"
)

func TestChain(t *testing.T) {
	g, err := circuitgen.Chain(4, circuitgen.WithSeed(42), circuitgen.WithControlSteps(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())

	w, err := g.WeightAt(core.SOURCE, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	assert.Len(t, g.Edges(), 4)
}

func TestChain_TooFew(t *testing.T) {
	_, err := circuitgen.Chain(0)
	assert.ErrorIs(t, err, circuitgen.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := circuitgen.Star(4, circuitgen.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	// hub (1) has one inbound edge from SOURCE and 3 outbound spokes.
	assert.Len(t, g.Edges(), 4)
}

func TestWheel(t *testing.T) {
	g, err := circuitgen.Wheel(5, circuitgen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumVertices())
	// SOURCE->hub, 4 spokes, 4 ring edges.
	assert.Len(t, g.Edges(), 9)
}

func TestWheel_RingTooSmall(t *testing.T) {
	_, err := circuitgen.Wheel(3)
	assert.ErrorIs(t, err, circuitgen.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := circuitgen.Grid(2, 3, circuitgen.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 7, g.NumVertices())
	// rows*(cols-1) right edges + (rows-1)*cols bottom edges, plus SOURCE edge.
	assert.Len(t, g.Edges(), 1+(2*2+1*3))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := circuitgen.RandomSparse(10, 0.3, circuitgen.WithSeed(99))
	require.NoError(t, err)
	g2, err := circuitgen.RandomSparse(10, 0.3, circuitgen.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, len(g1.Edges()), len(g2.Edges()))
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := circuitgen.RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, circuitgen.ErrInvalidProbability)
}
