// Package backtrack finds a Hamiltonian cycle by exhaustive depth-first search
// with feasibility pruning.
//
// The search fixes vertex 0 as the first path entry (any cycle can be rotated to
// start there) and extends the path one position at a time. At each position
// the candidates are tried in ascending vertex order, and a candidate is feasible
// when it is adjacent to the current last vertex and not yet on the path. When
// all n positions are filled the search succeeds iff the last vertex is adjacent
// to vertex 0; otherwise the placement is undone and the next candidate is tried.
//
// Guarantees:
//
//   - Complete: a cycle is returned iff the graph has one (given time).
//   - Deterministic: the same graph always yields the same cycle.
//   - Recursion depth is bounded by n.
//
// Entry points:
//
//	Find(g)                 // plain contract: cycle or nil
//	Search(ctx, g, opts...) // cancellable, reports node expansions
//
// Complexity: O(n!) worst case; O(n) memory beyond the adjacency snapshot.
package backtrack
