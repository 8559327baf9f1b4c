// Package hamcycle finds Hamiltonian cycles in simple undirected graphs and
// compares two ways of doing it.
//
// 🚀 What is inside?
//
//	• core/      - index-based Graph (vertices 0..n-1, ordered neighbour sets,
//	               R/W lock) plus ValidateCycle and cheap structural checks
//	• backtrack/ - exhaustive depth-first search: finds a cycle iff one exists
//	• posa/      - Pósa rotation-extension heuristic with a bounded iteration
//	               budget, seeded randomness and optional parallel attempts
//	• builder/   - deterministic graph factories (cycle, complete, wheel, grid,
//	               Petersen, G(n,p), ...) composable with Shifted
//	• compare/   - benchmark harness: per-size trials, time limits, buckets,
//	               slog progress logging and prometheus metrics
//	• cmd/hamcompare - CLI over compare (run) and one-off searches (solve)
//
// ✨ Guarantees
//
//   - A returned cycle has n+1 entries, starts and ends at the same vertex,
//     visits every vertex once and uses only edges of the graph.
//   - Backtracking is complete: nil means no Hamiltonian cycle exists.
//   - Pósa is sound but incomplete: nil means only that this budget failed.
//   - Same seed, same graph ⇒ same answer.
//
// Quick example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	g := core.NewGraph(4)
//	g.AddEdge(0, 1); g.AddEdge(1, 2); g.AddEdge(2, 3); g.AddEdge(3, 0); g.AddEdge(0, 2)
//	backtrack.Find(g) // [0 1 2 3 0]
//
// See each subpackage for details.
package hamcycle
