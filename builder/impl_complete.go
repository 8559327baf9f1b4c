// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_complete.go - Complete(n) and Disjoint(sizes...) constructors.
//
// Contract:
//   • Complete: n ≥ 1; emits every pair {i,j}, i<j, in lexicographic order.
//   • Disjoint: consecutive complete components of the given sizes (each ≥ 1),
//     placed back to back starting at the current offset.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodComplete   = "Complete"
	methodDisjoint   = "Disjoint"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodComplete, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.vertex(i), cfg.vertex(j))
			}
		}

		return nil
	}
}

// Disjoint returns a Constructor that builds one complete component per size.
// With two or more components the graph has no Hamiltonian cycle.
func Disjoint(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no components: %w", methodDisjoint, ErrTooFewVertices)
		}
		total := 0
		for i, s := range sizes {
			if s < minCompleteNodes {
				return fmt.Errorf("%s: sizes[%d]=%d < min=%d: %w", methodDisjoint, i, s, minCompleteNodes, ErrTooFewVertices)
			}
			total += s
		}
		if err := cfg.reserve(methodDisjoint, g, total); err != nil {
			return err
		}

		at := 0
		for _, s := range sizes {
			if err := Shifted(at, Complete(s))(g, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodDisjoint, err)
			}
			at += s
		}

		return nil
	}
}
