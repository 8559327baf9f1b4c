// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1; left side is 0..n1-1, right side n1..n1+n2-1.
//   • K_{n1,n2} is Hamiltonian iff n1 == n2 ≥ 2.
//
// Complexity: O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodCompleteBipartite, g, n1+n2); err != nil {
			return err
		}

		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				g.AddEdge(cfg.vertex(i), cfg.vertex(j))
			}
		}

		return nil
	}
}
