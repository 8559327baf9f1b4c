// SPDX-License-Identifier: MIT
//
// File: backtrack.go
// Role: exhaustive DFS engine and public entry points.
// Policy:
//   - The graph is prefetched once into ascending neighbour slices.
//   - path[0] == 0 is fixed; vertex 0 is never an extension candidate.
//   - Cancellation is checked sparsely (every 4096 placements).

package backtrack

import (
	"context"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	start            = 0
	emptySlot        = -1
	minCycleVertices = 3
	checkMask        = 4095 // deadline test every 4096 placements
)

// engine holds all search state for one Search call.
type engine struct {
	n      int
	adj    [][]int // adj[u] = ascending neighbours of u
	closes []bool  // closes[v] = v adjacent to start

	path   []int  // path[0:pos] is the current simple path
	onPath []bool // onPath[v] = v in path[0:pos]

	ctx      context.Context
	done     <-chan struct{}
	steps    int64
	maxNodes int64
	err      error // set once; aborts the whole search
}

// interrupted counts one placement and reports whether the search must stop.
func (e *engine) interrupted() bool {
	e.steps++
	if e.maxNodes > 0 && e.steps > e.maxNodes {
		e.err = ErrNodeLimit
		return true
	}
	if e.done == nil || (e.steps&checkMask) != 0 {
		return false
	}
	select {
	case <-e.done:
		e.err = e.ctx.Err()
		return true
	default:
		return false
	}
}

// extend fills path[pos] and recurses. It returns true once a closing
// Hamiltonian path is in place, leaving path intact for the caller.
func (e *engine) extend(pos int) bool {
	if pos == e.n {
		return e.closes[e.path[pos-1]]
	}

	last := e.path[pos-1]
	for _, v := range e.adj[last] {
		// Ascending neighbours of last == ascending scan of 1..n-1 filtered by adjacency.
		if v == start || e.onPath[v] {
			continue
		}
		if e.interrupted() {
			return false
		}
		e.path[pos] = v
		e.onPath[v] = true
		if e.extend(pos + 1) {
			return true
		}
		e.path[pos] = emptySlot
		e.onPath[v] = false
		if e.err != nil {
			return false
		}
	}

	return false
}

// Search runs the exhaustive search on g.
//
// A missing cycle is not an error: Result.Cycle is nil and err is nil. Errors
// are reserved for a nil graph, cancellation of ctx (ctx.Err() is returned
// verbatim) and ErrNodeLimit.
//
// Graphs with n < 3 or a vertex of degree < 2 are answered without searching.
func Search(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !g.MayHaveCycle() {
		return Result{}, nil
	}

	var e engine
	e.n = g.NumVertices()
	e.adj = g.AdjacencySnapshot()
	e.closes = make([]bool, e.n)
	for _, v := range e.adj[start] {
		e.closes[v] = true
	}
	e.path = make([]int, e.n)
	for i := range e.path {
		e.path[i] = emptySlot
	}
	e.onPath = make([]bool, e.n)
	e.path[0] = start
	e.onPath[start] = true
	e.ctx = ctx
	e.done = ctx.Done()
	e.maxNodes = o.maxNodes

	found := e.extend(1)
	if e.err != nil {
		return Result{Nodes: e.steps}, e.err
	}
	if !found {
		return Result{Nodes: e.steps}, nil
	}

	cycle := make([]int, e.n+1)
	copy(cycle, e.path)
	cycle[e.n] = start

	return Result{Cycle: cycle, Nodes: e.steps}, nil
}

// Find returns a Hamiltonian cycle of g starting and ending at vertex 0, or nil
// when none exists (or g is nil).
func Find(g *core.Graph) []int {
	res, err := Search(context.Background(), g)
	if err != nil {
		return nil
	}

	return res.Cycle
}
