// Package builder provides reusable “functional-options”-style graph
// constructors for core.Graph fixtures and benchmark instances.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, bopts, cons...): allocate an n-vertex graph and apply
//     constructors in order.
//     – Shifted(offset, c): run c on vertex ids shifted by offset, so several
//     topologies can share one graph.
//   - Deterministic topologies: Cycle, Path, Star, Wheel, Complete, Disjoint,
//     CompleteBipartite, Grid, Petersen.
//   - Stochastic topologies (need WithSeed / WithRand): RandomSparse,
//     ShuffledCycle.
//
// Guarantees:
//
//   - Idempotent edges: core.Graph ignores duplicates, so overlapping
//     constructors never create multi-edges.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name. Option constructors panic on nil arguments.
//   - Same options, same seed and same constructor order ⇒ identical graphs.
//
// Known Hamiltonicity of the deterministic topologies (useful in tests):
//
//	Cycle, Wheel, Complete (n≥3), Grid (rows·cols even, both ≥2)  → Hamiltonian
//	Path, Star, Petersen, CompleteBipartite (n1≠n2), Disjoint(≥2) → not Hamiltonian
package builder
