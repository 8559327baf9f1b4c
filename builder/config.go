// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic: no RNG unless explicitly set, offset 0.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hamcycle/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// offset is added to every vertex index a constructor emits.
	offset int
}

// newBuilderConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex maps a constructor-local index to a graph vertex id.
func (c builderConfig) vertex(i int) int { return c.offset + i }

// reserve checks that local indices 0..k-1 fit into g after the offset.
func (c builderConfig) reserve(method string, g *core.Graph, k int) error {
	if c.offset < 0 || c.offset+k > g.NumVertices() {
		return fmt.Errorf("%s: needs %d vertices at offset %d, graph has %d: %w",
			method, k, c.offset, g.NumVertices(), ErrSizeMismatch)
	}

	return nil
}
