// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_path.go - Path(n) constructor: edges i-(i+1) for i=0..n-2, n ≥ 2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodPath, g, n); err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			g.AddEdge(cfg.vertex(i), cfg.vertex(i+1))
		}

		return nil
	}
}
