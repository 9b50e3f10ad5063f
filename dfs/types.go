package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTooManyPaths indicates that enumeration exceeded Options.MaxPaths.
	ErrTooManyPaths = errors.New("dfs: path enumeration limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// DefaultMaxPaths bounds enumeration when no WithMaxPaths option is given.
const DefaultMaxPaths = 1 << 20

// Option configures path enumeration.
type Option func(*Options)

// Options holds enumeration limits.
type Options struct {
	// MaxPaths caps the number of partial paths explored. Simple-path
	// enumeration is exponential in the worst case; exceeding the cap
	// aborts with ErrTooManyPaths.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxPaths = DefaultMaxPaths.
func DefaultOptions() Options {
	return Options{MaxPaths: DefaultMaxPaths}
}

// WithMaxPaths sets the enumeration cap (n > 0).
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPaths must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}
