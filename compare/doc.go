// SPDX-License-Identifier: MIT

// Package compare runs the exhaustive backtracking search and the randomized
// Pósa heuristic side by side over a range of graph sizes and reports success
// counts and wall-clock times per size bucket.
//
// Each trial builds one graph that hides a Hamiltonian cycle (a shuffled ring
// overlaid with G(n,p) noise), then gives each algorithm its own time limit.
// Pósa repeats single attempts with one shared random stream until it succeeds
// or the limit expires; backtracking runs once. Every cycle an algorithm
// returns is re-checked with core.ValidateCycle before it counts as a success.
//
// Trials of different sizes run concurrently up to Config.Concurrency; the two
// algorithms inside a trial run one after the other so their timings do not
// compete for the same CPU.
//
// Observability is injected: a *slog.Logger for progress and a *Metrics bound
// to a caller-supplied prometheus.Registerer.
package compare
