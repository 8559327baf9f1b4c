// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Cheap structural checks used to short-circuit or explain search results.

package core

// IsConnected reports whether every vertex is reachable from vertex 0.
// The empty graph is considered connected.
//
// A disconnected graph with n >= 2 has no Hamiltonian cycle, which lets the
// harness label a failure as structural rather than a timeout.
//
// Complexity: O(n + E).
func (g *Graph) IsConnected() bool {
	if g.n == 0 {
		return true
	}
	adj := g.AdjacencySnapshot()

	seen := make([]bool, g.n)
	queue := make([]int, 0, g.n)
	queue = append(queue, 0)
	seen[0] = true
	reached := 1

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, w := range adj[u] {
			if !seen[w] {
				seen[w] = true
				reached++
				queue = append(queue, w)
			}
		}
	}

	return reached == g.n
}

// SatisfiesDirac reports whether n >= 3 and every vertex has degree >= n/2.
// Such a graph is Hamiltonian (Dirac, 1952), so a complete search must succeed.
func (g *Graph) SatisfiesDirac() bool {
	if g.n < minCycleVertices {
		return false
	}

	return 2*g.MinDegree() >= g.n
}

// MayHaveCycle is the cheap necessary-condition filter shared by the searches:
// at least three vertices and minimum degree two.
func (g *Graph) MayHaveCycle() bool {
	return g.n >= minCycleVertices && g.MinDegree() >= 2
}
