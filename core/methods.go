// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge mutation and adjacency queries.
// Determinism:
//   - Neighbors, Edges and AdjacencySnapshot return ascending ids.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

// AddEdge inserts the undirected edge {u,v}.
//
// The call is a silent no-op when either id is outside [0, n) or when u == v;
// the graph then stays exactly as it was. Re-adding an existing edge is also a
// no-op, so the graph stays simple.
//
// Complexity: O(log d) where d is the larger endpoint degree.
func (g *Graph) AddEdge(u, v int) {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adj[u].Contains(v) {
		return
	}
	g.adj[u].Add(v)
	g.adj[v].Add(u)
	g.edgeCount++
}

// Neighbors returns the neighbours of v in ascending order.
// It returns nil when v is out of range. The slice is a fresh copy.
//
// Complexity: O(d).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return toInts(g.adj[v].Values())
}

// HasEdge reports whether {u,v} is an edge. Out-of-range ids yield false.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[u].Contains(v)
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Degree returns the number of neighbours of v, or 0 when v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v].Size()
}

// MinDegree returns the smallest vertex degree, or 0 for an empty graph.
func (g *Graph) MinDegree() int {
	return g.Stats().MinDegree
}

// Stats returns vertex/edge counts and degree extremes in one read-locked pass.
// Complexity: O(n).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{VertexCount: g.n, EdgeCount: g.edgeCount}
	for v := 0; v < g.n; v++ {
		d := g.adj[v].Size()
		if v == 0 || d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}

// Edges returns every edge once as {u,v} with u < v, ordered by (u,v).
// Complexity: O(n + E).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		it := g.adj[u].Iterator()
		for it.Next() {
			v := it.Value().(int)
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// AdjacencySnapshot returns, for every vertex, its ascending neighbour list.
// Search engines call it once up front so their hot loops never touch the lock
// or the tree sets.
//
// Complexity: O(n + E) time and space.
func (g *Graph) AdjacencySnapshot() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		out[v] = toInts(g.adj[v].Values())
	}

	return out
}

// Clone returns an independent deep copy of g.
// Complexity: O(n + E log d).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(g.n)
	for v := 0; v < g.n; v++ {
		c.adj[v].Add(g.adj[v].Values()...)
	}
	c.edgeCount = g.edgeCount

	return c
}

// toInts converts tree-set values (boxed ints) to a plain slice.
func toInts(vals []interface{}) []int {
	out := make([]int, len(vals))
	for i, x := range vals {
		out[i] = x.(int)
	}

	return out
}
