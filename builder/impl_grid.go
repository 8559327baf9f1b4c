// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1; cell (r,c) is local index r*cols+c (row-major).
//   • Emits right and bottom neighbours per cell, row-major.
//   • A grid with rows,cols ≥ 2 is Hamiltonian iff rows*cols is even.
//
// Complexity: O(rows·cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := cfg.reserve(methodGrid, g, rows*cols); err != nil {
			return err
		}

		cell := func(r, c int) int { return cfg.vertex(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.AddEdge(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					g.AddEdge(cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
