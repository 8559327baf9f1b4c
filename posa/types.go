package posa

import (
	"errors"
	"math/rand"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("posa: graph is nil")

	// ErrInvalidBudget is returned for maxIterations < 1 or attempts < 1.
	ErrInvalidBudget = errors.New("posa: budget must be positive")
)

// Outcome classifies how an attempt (or the last attempt of a Search) ended.
type Outcome int

const (
	// Found means a Hamiltonian cycle was closed.
	Found Outcome = iota
	// DeadEnd means the endpoint had no untried neighbour left.
	DeadEnd
	// BudgetExhausted means the iteration budget ran out.
	BudgetExhausted
	// Degenerate means n < 3; no simple graph that small has a cycle.
	Degenerate
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case DeadEnd:
		return "dead-end"
	case BudgetExhausted:
		return "budget-exhausted"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Result holds the outcome of Attempt or Search.
type Result struct {
	// Cycle is the closed cycle (len n+1, Cycle[0]==Cycle[n]) or nil.
	Cycle []int

	// Iterations is the total number of iterations over all attempts run.
	Iterations int

	// Attempts is the number of attempts run (1 for Attempt).
	Attempts int

	// Outcome describes the successful attempt, or the last failed one.
	Outcome Outcome
}

// Found reports whether a cycle was found.
func (r Result) Found() bool { return len(r.Cycle) > 0 }

// Option configures Attempt and Search.
type Option func(*options)

type options struct {
	rng     *rand.Rand
	workers int
}

func newOptions(opts ...Option) options {
	o := options{workers: 1}
	for _, fn := range opts {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(0)
	}

	return o
}

// WithSeed selects a deterministic RNG stream. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rngFromSeed(seed) }
}

// WithRand uses r as the RNG stream; successive calls sharing r continue the
// same stream. r must not be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("posa: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithWorkers runs Search attempts on k goroutines. Values < 1 mean 1.
// With k > 1 each attempt i draws from its own stream derived from the base
// RNG and i; which successful attempt is reported depends on scheduling.
func WithWorkers(k int) Option {
	return func(o *options) {
		if k < 1 {
			k = 1
		}
		o.workers = k
	}
}
