// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_petersen.go - Petersen() constructor.
//
// The Petersen graph is 3-regular on 10 vertices and has no Hamiltonian cycle,
// which makes it the standard negative fixture for exhaustive searches.
//   • Outer ring 0..4, spokes i-i+5, inner pentagram 5+i - 5+(i+2)%5.

package builder

import "github.com/katalvlaran/hamcycle/core"

const (
	methodPetersen   = "Petersen"
	petersenVertices = 10
	petersenRing     = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := cfg.reserve(methodPetersen, g, petersenVertices); err != nil {
			return err
		}

		for i := 0; i < petersenRing; i++ {
			g.AddEdge(cfg.vertex(i), cfg.vertex((i+1)%petersenRing))
			g.AddEdge(cfg.vertex(i), cfg.vertex(i+petersenRing))
			g.AddEdge(cfg.vertex(petersenRing+i), cfg.vertex(petersenRing+(i+2)%petersenRing))
		}

		return nil
	}
}
