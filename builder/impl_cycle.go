// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_cycle.go - Cycle(n) and ShuffledCycle(n) constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Cycle emits edges i-(i+1)%n for i=0..n-1.
//   • ShuffledCycle emits the same ring over a random permutation of 0..n-1;
//     it needs cfg.rng (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(n) edges. Space: O(1) for Cycle, O(n) for ShuffledCycle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodCycle         = "Cycle"
	methodShuffledCycle = "ShuffledCycle"
	minCycleNodes       = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodCycle, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			g.AddEdge(cfg.vertex(i), cfg.vertex((i+1)%n))
		}

		return nil
	}
}

// ShuffledCycle returns a Constructor that builds C_n through a random vertex
// order, hiding a Hamiltonian cycle that is not simply 0,1,...,n-1.
func ShuffledCycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodShuffledCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodShuffledCycle, ErrNeedRandSource)
		}
		if err := cfg.reserve(methodShuffledCycle, g, n); err != nil {
			return err
		}

		order := cfg.rng.Perm(n)
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.vertex(order[i]), cfg.vertex(order[(i+1)%n]))
		}

		return nil
	}
}
