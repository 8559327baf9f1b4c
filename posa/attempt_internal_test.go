package posa

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathAttempt seeds an attempt whose path is 0..n-1 on the complete graph K_n.
func pathAttempt(n int) *attempt {
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				adj[u] = append(adj[u], v)
			}
		}
	}
	a := newAttempt(adj, rand.New(rand.NewSource(1)))
	for v := 0; v < n; v++ {
		a.push(v)
	}

	return a
}

func TestRotate_ReversesSuffix(t *testing.T) {
	a := pathAttempt(5)

	require.True(t, a.rotate(1))
	assert.Equal(t, []int{0, 1, 4, 3, 2}, a.path)
	for i, v := range a.path {
		assert.Equal(t, i, a.pos[v], "pos of %d", v)
	}
}

func TestRotate_DeclinedWhenStateSeen(t *testing.T) {
	a := pathAttempt(5)
	a.markTried(stateKey{length: 5, endpoint: 2}, 0)

	require.False(t, a.rotate(1))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.path)
}

func TestRotate_PredecessorIsNoop(t *testing.T) {
	a := pathAttempt(4)
	// x = path[len-2]: the rotated path equals the current one and ends at the
	// endpoint itself; the caller has just marked (len, e), so it is declined.
	a.markTried(stateKey{length: 4, endpoint: 3}, 2)

	require.False(t, a.rotate(2))
	assert.Equal(t, []int{0, 1, 2, 3}, a.path)
	require.False(t, a.rotate(3), "endpoint itself never rotates")
}

func TestUntried_ExcludesHistoryPerLength(t *testing.T) {
	a := pathAttempt(4)
	a.markTried(stateKey{length: 4, endpoint: 3}, 1)

	assert.Equal(t, []int{0, 2}, a.untried(stateKey{length: 4, endpoint: 3}))
	// Same endpoint at another length starts fresh.
	assert.Equal(t, []int{0, 1, 2}, a.untried(stateKey{length: 3, endpoint: 3}))
}

func TestRun_CompleteGraphCloses(t *testing.T) {
	a := pathAttempt(5)
	assert.True(t, a.closes())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, a.cycle())

	fresh := newAttempt(a.adj, rand.New(rand.NewSource(9)))
	res, err := fresh.run(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, Found, res.Outcome)
	assert.Len(t, res.Cycle, 6)
}

func TestDeriveSeed_Distinct(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 64; s++ {
		x := deriveSeed(defaultRNGSeed, s)
		assert.False(t, seen[x], "stream %d collides", s)
		seen[x] = true
	}
	assert.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())
}
