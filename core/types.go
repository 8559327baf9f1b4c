// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, constructor, sentinel errors and the stats value object.
// Policy:
//   - Vertex set is fixed at construction; only edges are mutable.
//   - adj[v] is an ordered set of int neighbour ids (ascending iteration).
//   - mu guards adj and edgeCount.

package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for cycle validation.
var (
	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrCycleLength indicates len(cycle) != NumVertices()+1.
	ErrCycleLength = errors.New("core: cycle has wrong length")

	// ErrCycleNotClosed indicates cycle[0] != cycle[n].
	ErrCycleNotClosed = errors.New("core: cycle is not closed")

	// ErrVertexOutOfRange indicates a cycle entry outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrVertexRepeated indicates a vertex visited twice before closing.
	ErrVertexRepeated = errors.New("core: vertex repeated")

	// ErrMissingEdge indicates two consecutive cycle entries are not adjacent.
	ErrMissingEdge = errors.New("core: missing edge")
)

// minCycleVertices is the smallest vertex count admitting a Hamiltonian cycle
// in a simple graph.
const minCycleVertices = 3

// Graph is a simple undirected graph over the vertex ids 0..n-1.
type Graph struct {
	mu sync.RWMutex // guards adj and edgeCount

	n         int
	adj       []*treeset.Set // adj[v] = ordered neighbour ids of v
	edgeCount int
}

// GraphStats is a read-only snapshot of graph size and degree extremes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MinDegree   int
	MaxDegree   int
}

// NewGraph returns an edgeless graph with n vertices. Negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:   n,
		adj: make([]*treeset.Set, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = treeset.NewWithIntComparator()
	}

	return g
}

// inRange reports whether v is a valid vertex id. n is immutable, no lock needed.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}
