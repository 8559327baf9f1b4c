package backtrack

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("backtrack: graph is nil")

	// ErrNodeLimit is returned when WithMaxNodes is set and the search expanded
	// that many nodes without deciding.
	ErrNodeLimit = errors.New("backtrack: node limit reached")
)

// Result holds the outcome of a Search.
type Result struct {
	// Cycle is the closed Hamiltonian cycle starting and ending at 0, or nil.
	// For n vertices, len(Cycle) == n+1.
	Cycle []int

	// Nodes counts candidate placements (path extensions) made by the search.
	Nodes int64
}

// Found reports whether a cycle was found.
func (r Result) Found() bool { return len(r.Cycle) > 0 }

// Option configures Search.
type Option func(*options)

type options struct {
	maxNodes int64 // 0 = unlimited
}

// WithMaxNodes caps node expansions. Values <= 0 mean unlimited.
func WithMaxNodes(limit int64) Option {
	return func(o *options) {
		if limit < 0 {
			limit = 0
		}
		o.maxNodes = limit
	}
}
