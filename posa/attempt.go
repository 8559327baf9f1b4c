// SPDX-License-Identifier: MIT
//
// File: attempt.go
// Role: per-attempt search state and the rotation-extension loop.
// Policy:
//   - One attempt owns path, pos and history; nothing is shared across attempts.
//   - adj is a read-only snapshot shared by all attempts of one call.
//   - pos[v] >= 0 iff v is on the path ("processed"); it is the index of v.

package posa

import (
	"context"
	"math/rand"
	"slices"
)

const offPath = -1

// stateKey identifies a structural state: path length and endpoint.
type stateKey struct {
	length   int
	endpoint int
}

// attempt is the state of one independent Pósa attempt.
type attempt struct {
	n   int
	adj [][]int // ascending neighbours, read-only
	rng *rand.Rand

	path []int
	pos  []int

	// history[(len, e)] = neighbours of e already tried at that length.
	history map[stateKey]map[int]struct{}

	cand []int // scratch buffer for untried neighbours
}

func newAttempt(adj [][]int, rng *rand.Rand) *attempt {
	n := len(adj)
	a := &attempt{
		n:       n,
		adj:     adj,
		rng:     rng,
		path:    make([]int, 0, n),
		pos:     make([]int, n),
		history: make(map[stateKey]map[int]struct{}),
	}
	for v := range a.pos {
		a.pos[v] = offPath
	}

	return a
}

// untried fills a.cand with neighbours of e not yet tried from key.
func (a *attempt) untried(key stateKey) []int {
	tried := a.history[key]
	a.cand = a.cand[:0]
	for _, x := range a.adj[key.endpoint] {
		if _, ok := tried[x]; !ok {
			a.cand = append(a.cand, x)
		}
	}

	return a.cand
}

// markTried records x as tried from key.
func (a *attempt) markTried(key stateKey, x int) {
	set, ok := a.history[key]
	if !ok {
		set = make(map[int]struct{})
		a.history[key] = set
	}
	set[x] = struct{}{}
}

// push appends v to the path.
func (a *attempt) push(v int) {
	a.pos[v] = len(a.path)
	a.path = append(a.path, v)
}

// rotate applies the Pósa rotation pivoting on the path vertex x: the suffix
// after x is reversed, so x's old successor becomes the new endpoint. The
// rotation is skipped when the resulting (length, endpoint) state has history.
// It reports whether the path changed.
func (a *attempt) rotate(x int) bool {
	i := a.pos[x]
	last := len(a.path) - 1
	if i >= last {
		return false
	}
	newEnd := a.path[i+1]
	if _, seen := a.history[stateKey{length: len(a.path), endpoint: newEnd}]; seen {
		return false
	}

	for lo, hi := i+1, last; lo < hi; lo, hi = lo+1, hi-1 {
		a.path[lo], a.path[hi] = a.path[hi], a.path[lo]
	}
	for k := i + 1; k <= last; k++ {
		a.pos[a.path[k]] = k
	}

	return true
}

// closes reports whether the current path is Hamiltonian with adjacent ends.
func (a *attempt) closes() bool {
	if len(a.path) != a.n {
		return false
	}
	_, ok := slices.BinarySearch(a.adj[a.path[0]], a.path[a.n-1])

	return ok
}

// cycle returns the closed cycle for a closing path.
func (a *attempt) cycle() []int {
	out := make([]int, a.n+1)
	copy(out, a.path)
	out[a.n] = a.path[0]

	return out
}

// run executes one attempt. It returns ctx.Err() when done fires; the token is
// checked once per iteration.
func (a *attempt) run(ctx context.Context, maxIterations int) (Result, error) {
	res := Result{Attempts: 1}
	if a.n < minCycleVertices {
		res.Outcome = Degenerate
		return res, nil
	}

	a.push(a.rng.Intn(a.n))
	done := ctx.Done()

	for res.Iterations < maxIterations {
		if done != nil {
			select {
			case <-done:
				return res, ctx.Err()
			default:
			}
		}
		res.Iterations++

		e := a.path[len(a.path)-1]
		key := stateKey{length: len(a.path), endpoint: e}
		cand := a.untried(key)
		if len(cand) == 0 {
			res.Outcome = DeadEnd
			return res, nil
		}

		x := cand[a.rng.Intn(len(cand))]
		a.markTried(key, x)

		if a.pos[x] == offPath {
			a.push(x)
		} else {
			a.rotate(x)
		}

		if a.closes() {
			res.Cycle = a.cycle()
			res.Outcome = Found
			return res, nil
		}
	}
	res.Outcome = BudgetExhausted

	return res, nil
}
