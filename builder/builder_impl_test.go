// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor:
// vertex and edge counts, topology samples, offset composition and
// sentinel errors on invalid parameters.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(5), wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "missing %d-%d", i, (i+1)%5)
				}
				assert.NoError(t, core.ValidateCycle(g, []int{0, 1, 2, 3, 4, 0}))
			},
		},
		{
			name: "Path(4)", n: 4, ctor: builder.Path(4), wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 1, g.Degree(0))
				assert.Equal(t, 1, g.Degree(3))
				assert.False(t, g.HasEdge(3, 0))
			},
		},
		{
			name: "Complete(5)", n: 5, ctor: builder.Complete(5), wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 5; v++ {
					assert.Equal(t, 4, g.Degree(v))
				}
			},
		},
		{
			name: "Disjoint(3,4)", n: 7, ctor: builder.Disjoint(3, 4), wantE: 3 + 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 2))
				assert.True(t, g.HasEdge(3, 6))
				assert.False(t, g.HasEdge(2, 3))
				assert.False(t, g.IsConnected())
			},
		},
		{
			name: "Star(5)", n: 5, ctor: builder.Star(5), wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.Equal(t, 1, g.MinDegree())
			},
		},
		{
			name: "Wheel(6)", n: 6, ctor: builder.Wheel(6), wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 5, g.Degree(0))
				assert.True(t, g.HasEdge(5, 1), "rim must close")
				for v := 1; v < 6; v++ {
					assert.Equal(t, 3, g.Degree(v))
				}
			},
		},
		{
			name: "CompleteBipartite(2,3)", n: 5, ctor: builder.CompleteBipartite(2, 3), wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.False(t, g.HasEdge(2, 3))
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Grid(3,4)", n: 12, ctor: builder.Grid(3, 4), wantE: 3*3 + 2*4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 4))
				assert.False(t, g.HasEdge(3, 4), "row wrap is not an edge")
				assert.Equal(t, 2, g.Degree(11))
			},
		},
		{
			name: "Petersen", n: 10, ctor: builder.Petersen(), wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 10; v++ {
					assert.Equal(t, 3, g.Degree(v))
				}
				assert.True(t, g.HasEdge(5, 7))
				assert.False(t, g.HasEdge(5, 6))
			},
		},
		{
			name: "RandomSparse(6,1)", n: 6, ctor: builder.RandomSparse(6, 1), wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", n: 6, ctor: builder.RandomSparse(6, 0), wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.NumVertices())
			assert.Equal(t, tc.wantE, g.NumEdges())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_InvalidParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", 2, builder.Cycle(2), builder.ErrTooFewVertices},
		{"ShuffledCycle(2)", 2, builder.ShuffledCycle(2), builder.ErrTooFewVertices},
		{"Path(1)", 1, builder.Path(1), builder.ErrTooFewVertices},
		{"Complete(0)", 0, builder.Complete(0), builder.ErrTooFewVertices},
		{"Disjoint()", 0, builder.Disjoint(), builder.ErrTooFewVertices},
		{"Disjoint(3,0)", 3, builder.Disjoint(3, 0), builder.ErrTooFewVertices},
		{"Star(1)", 1, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", 3, builder.Wheel(3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", 2, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", 0, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", 0, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse p<0", 4, builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", 4, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", 4, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"ShuffledCycle no rng", 4, builder.ShuffledCycle(4), builder.ErrNeedRandSource},
		{"Cycle too big", 4, builder.Cycle(5), builder.ErrSizeMismatch},
		{"Petersen too small", 9, builder.Petersen(), builder.ErrSizeMismatch},
		{"nil constructor", 3, nil, builder.ErrConstructFailed},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "BuildGraph:")
		})
	}
}

func TestBuildGraph_NegativeSize(t *testing.T) {
	_, err := builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NoConstructors(t *testing.T) {
	g, err := builder.BuildGraph(4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
}

func TestShifted_ComposesOffsets(t *testing.T) {
	g, err := builder.BuildGraph(8, nil,
		builder.Cycle(3),
		builder.Shifted(3, builder.Cycle(5)),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, g.NumEdges())
	assert.True(t, g.HasEdge(2, 0))
	assert.True(t, g.HasEdge(3, 7))
	assert.False(t, g.HasEdge(2, 3))

	nested := builder.Shifted(2, builder.Shifted(3, builder.Path(2)))
	g, err = builder.BuildGraph(7, nil, nested)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{5, 6}}, g.Edges())

	_, err = builder.BuildGraph(6, nil, nested)
	assert.ErrorIs(t, err, builder.ErrSizeMismatch, "Path(2) at offset 5 needs vertex 6")
}

func TestShifted_OutOfRange(t *testing.T) {
	_, err := builder.BuildGraph(4, nil, builder.Shifted(2, builder.Cycle(3)))
	assert.ErrorIs(t, err, builder.ErrSizeMismatch)

	_, err = builder.BuildGraph(4, nil, builder.Shifted(-1, builder.Cycle(3)))
	assert.ErrorIs(t, err, builder.ErrSizeMismatch)

	_, err = builder.BuildGraph(4, nil, builder.Shifted(0, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestShuffledCycle_IsHamiltonianRing(t *testing.T) {
	const n = 12
	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(7)}, builder.ShuffledCycle(n))
	require.NoError(t, err)

	assert.Equal(t, n, g.NumEdges())
	for v := 0; v < n; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
	assert.True(t, g.IsConnected())
}

func TestRandomSparse_DeterministicWithSeed(t *testing.T) {
	build := func(seed int64) [][2]int {
		g, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}

	first := build(42)
	assert.Equal(t, first, build(42))
	assert.NotEqual(t, first, build(43))
	assert.NotEmpty(t, first)
}

func TestRandomSparse_OverlaysExistingEdges(t *testing.T) {
	g, err := builder.BuildGraph(10, []builder.BuilderOption{builder.WithSeed(1)},
		builder.Cycle(10),
		builder.RandomSparse(10, 0.3),
	)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.True(t, g.HasEdge(i, (i+1)%10))
	}
	assert.GreaterOrEqual(t, g.NumEdges(), 10)
}
