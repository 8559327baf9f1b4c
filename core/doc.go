// Package core provides the index-based, simple undirected Graph consumed by
// the Hamiltonian-cycle searches in backtrack and posa.
//
// Vertices are the integers 0..n-1, fixed at construction. Each vertex owns an
// ordered neighbour set (a red-black tree set), so every neighbour listing is
// ascending and every run over the same graph observes the same order.
//
// Contract highlights:
//
//   - AddEdge(u,v) mirrors the edge into both neighbour sets.
//   - Out-of-range ids and self-loops are silently ignored by AddEdge; callers
//     that need strict validation check ids themselves.
//   - Neighbors(v) returns nil for an out-of-range v; HasEdge returns false.
//   - A sync.RWMutex guards the adjacency, so concurrent read-only searches over
//     one graph are safe.
//
// Cycle contract (shared by every search in this module):
//
//	len(c) == n+1, c[0] == c[n], c[:n] is a permutation of 0..n-1,
//	and HasEdge(c[i], c[i+1]) holds for every i.
//
// ValidateCycle checks exactly this contract and reports the first violation as
// a wrapped sentinel error.
//
// Graphs with fewer than three vertices never contain a Hamiltonian cycle: a
// closed walk over one vertex needs a loop and over two vertices it reuses the
// same edge.
package core
