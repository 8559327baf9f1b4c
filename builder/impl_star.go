// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   • The hub is local index 0; leaves / rim are 1..n-1.
//   • Star: n ≥ 2, spokes 0-i.
//   • Wheel: n ≥ 4, rim cycle over 1..n-1 plus spokes 0-i.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim (n-1) must be a cycle
	hubIndex      = 0
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodStar, g, n); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			g.AddEdge(cfg.vertex(hubIndex), cfg.vertex(i))
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub 0.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodWheel, g, n); err != nil {
			return err
		}

		if err := Shifted(1, Cycle(n-1))(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		return Star(n)(g, cfg)
	}
}
