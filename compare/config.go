// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: harness configuration, YAML loading and validation.
// Policy:
//   - LoadConfig overlays the file on DefaultConfig, so a partial file is valid.
//   - Validate reports the first offending field wrapped in ErrInvalidConfig.

package compare

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("compare: invalid config")

const (
	defaultMinSize         = 20
	defaultMaxSize         = 99
	defaultBucketWidth     = 10
	defaultTrialsPerSize   = 1
	defaultTimeLimit       = 5 * time.Second
	defaultPosaIterations  = 5000
	defaultEdgeProbability = 0.15
	defaultSeed            = 1
	defaultConcurrency     = 1

	minTrialSize = 3
)

// Config drives one harness run.
type Config struct {
	// MinSize and MaxSize bound the graph sizes, inclusive.
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
	// BucketWidth groups consecutive sizes for the summary (20..29, 30..39, ...).
	BucketWidth int `yaml:"bucket_width"`
	// TrialsPerSize is the number of independent graphs per size.
	TrialsPerSize int `yaml:"trials_per_size"`
	// TimeLimit bounds each algorithm on each trial.
	TimeLimit time.Duration `yaml:"time_limit"`
	// PosaIterations is the iteration budget of a single Pósa attempt.
	PosaIterations int `yaml:"posa_iterations"`
	// EdgeProbability is p of the G(n,p) noise laid over the hidden ring.
	EdgeProbability float64 `yaml:"edge_probability"`
	// Seed makes the whole run reproducible.
	Seed int64 `yaml:"seed"`
	// Concurrency caps the number of trials in flight.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns sizes 20..99 in buckets of 10, one trial per size,
// 5s per algorithm and 5000 iterations per Pósa attempt.
func DefaultConfig() Config {
	return Config{
		MinSize:         defaultMinSize,
		MaxSize:         defaultMaxSize,
		BucketWidth:     defaultBucketWidth,
		TrialsPerSize:   defaultTrialsPerSize,
		TimeLimit:       defaultTimeLimit,
		PosaIterations:  defaultPosaIterations,
		EdgeProbability: defaultEdgeProbability,
		Seed:            defaultSeed,
		Concurrency:     defaultConcurrency,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("LoadConfig: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	switch {
	case c.MinSize < minTrialSize:
		return fmt.Errorf("%w: min_size=%d < %d", ErrInvalidConfig, c.MinSize, minTrialSize)
	case c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: max_size=%d < min_size=%d", ErrInvalidConfig, c.MaxSize, c.MinSize)
	case c.BucketWidth < 1:
		return fmt.Errorf("%w: bucket_width=%d < 1", ErrInvalidConfig, c.BucketWidth)
	case c.TrialsPerSize < 1:
		return fmt.Errorf("%w: trials_per_size=%d < 1", ErrInvalidConfig, c.TrialsPerSize)
	case c.TimeLimit <= 0:
		return fmt.Errorf("%w: time_limit=%s must be positive", ErrInvalidConfig, c.TimeLimit)
	case c.PosaIterations < 1:
		return fmt.Errorf("%w: posa_iterations=%d < 1", ErrInvalidConfig, c.PosaIterations)
	case c.EdgeProbability < 0 || c.EdgeProbability > 1:
		return fmt.Errorf("%w: edge_probability=%g not in [0,1]", ErrInvalidConfig, c.EdgeProbability)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency=%d < 1", ErrInvalidConfig, c.Concurrency)
	}

	return nil
}

// Sizes returns MinSize..MaxSize in ascending order.
func (c Config) Sizes() []int {
	out := make([]int, 0, c.MaxSize-c.MinSize+1)
	for s := c.MinSize; s <= c.MaxSize; s++ {
		out = append(out, s)
	}

	return out
}
