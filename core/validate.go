// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Hamiltonian cycle contract check shared by searches, harness and tests.

package core

import "fmt"

// ValidateCycle verifies that cycle is a closed Hamiltonian cycle of g.
//
// Checks, in order:
//  1. g != nil                                  (ErrGraphNil)
//  2. n >= 3 and len(cycle) == n+1              (ErrCycleLength)
//  3. cycle[0] == cycle[n]                      (ErrCycleNotClosed)
//  4. every cycle[i] in [0,n)                   (ErrVertexOutOfRange)
//  5. no repeats in cycle[:n]                   (ErrVertexRepeated)
//  6. HasEdge(cycle[i], cycle[i+1]) for all i   (ErrMissingEdge)
//
// Errors carry the offending position and are wrapped, so errors.Is works.
// Complexity: O(n log d).
func ValidateCycle(g *Graph, cycle []int) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.n
	if n < minCycleVertices || len(cycle) != n+1 {
		return fmt.Errorf("ValidateCycle: len=%d, n=%d: %w", len(cycle), n, ErrCycleLength)
	}
	if cycle[0] != cycle[n] {
		return fmt.Errorf("ValidateCycle: first=%d last=%d: %w", cycle[0], cycle[n], ErrCycleNotClosed)
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = cycle[i]
		if v < 0 || v >= n {
			return fmt.Errorf("ValidateCycle: cycle[%d]=%d: %w", i, v, ErrVertexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("ValidateCycle: cycle[%d]=%d: %w", i, v, ErrVertexRepeated)
		}
		seen[v] = true
	}

	for i = 0; i < n; i++ {
		if !g.HasEdge(cycle[i], cycle[i+1]) {
			return fmt.Errorf("ValidateCycle: %d-%d at %d: %w", cycle[i], cycle[i+1], i, ErrMissingEdge)
		}
	}

	return nil
}
