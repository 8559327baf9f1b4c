package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithRand_MatchesWithSeed(t *testing.T) {
	viaSeed, err := builder.BuildGraph(20, []builder.BuilderOption{builder.WithSeed(99)},
		builder.ShuffledCycle(20))
	require.NoError(t, err)

	viaRand, err := builder.BuildGraph(20, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))},
		builder.ShuffledCycle(20))
	require.NoError(t, err)

	assert.Equal(t, viaSeed.Edges(), viaRand.Edges())
}

func TestOptions_LaterOverridesEarlier(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1), builder.WithSeed(2)}
	a, err := builder.BuildGraph(25, opts, builder.RandomSparse(25, 0.3))
	require.NoError(t, err)

	b, err := builder.BuildGraph(25, []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomSparse(25, 0.3))
	require.NoError(t, err)

	assert.Equal(t, b.Edges(), a.Edges())
}

func TestSharedRand_AdvancesAcrossConstructors(t *testing.T) {
	g, err := builder.BuildGraph(16, []builder.BuilderOption{builder.WithSeed(5)},
		builder.ShuffledCycle(8),
		builder.Shifted(8, builder.ShuffledCycle(8)),
	)
	require.NoError(t, err)
	assert.Equal(t, 16, g.NumEdges())
	assert.False(t, g.IsConnected())
}
