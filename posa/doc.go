// Package posa searches for a Hamiltonian cycle with Pósa's randomized
// rotation-extension procedure.
//
// One attempt grows a simple path from a random start vertex. Each iteration
// looks at the path endpoint e and at the neighbours of e not yet tried from
// the state (len(path), e), picks one of them uniformly at random and records it:
//
//   - if the neighbour x is off the path, the path is extended by x;
//   - if x is on the path, the suffix after x is reversed (a Pósa rotation),
//     giving a path of the same length ending at x's old successor. The rotation
//     is declined when that (length, endpoint) state already has history.
//
// An attempt succeeds when the path covers all n vertices and its ends are
// adjacent; it fails on a dead end (no untried neighbour) or when the iteration
// budget runs out. Every iteration consumes a fresh (length, endpoint, neighbour)
// triple, so an attempt always ends within n·2|E| iterations.
//
// The procedure is incomplete: a failed attempt proves nothing about the graph.
// Any returned cycle, however, satisfies the core.ValidateCycle contract.
//
// Entry points:
//
//	Attempt(ctx, g, maxIterations, opts...)         // single attempt
//	Search(ctx, g, attempts, maxIterations, opts...) // fresh state per attempt
//
// Randomness is explicit: WithSeed / WithRand select the stream, and the zero
// configuration uses a fixed default seed, so runs are reproducible. WithWorkers
// spreads Search attempts over goroutines, each attempt owning its own RNG stream
// and state.
package posa
