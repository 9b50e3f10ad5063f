package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that a start or end vertex name is absent
	// from the graph. Nothing is computed or changed when it is returned.
	ErrUnknownVertex = errors.New("dijkstra: unknown vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Infinity is the distance of a vertex that has not been reached.
// Any finite relaxation compares strictly smaller.
const Infinity int64 = math.MaxInt64

// StateKind tags the predecessor state of a vertex after a run.
type StateKind uint8

const (
	// Unvisited: distance is Infinity and there is no predecessor.
	Unvisited StateKind = iota

	// Origin: the vertex is the source of the run.
	Origin

	// Reached: the vertex was reached through predecessor State.Via.
	Reached
)

// State is the tagged predecessor link of one vertex.
type State struct {
	Kind StateKind // Unvisited, Origin or Reached
	Via  string    // predecessor name; set only when Kind == Reached
}

// String renders the state as "unvisited", "origin" or "via <name>".
func (s State) String() string {
	switch s.Kind {
	case Origin:
		return "origin"
	case Reached:
		return "via " + s.Via
	default:
		return "unvisited"
	}
}

// Options configures a Run.
//
// MaxDistance      – candidates farther than this are never recorded, so they stay Unvisited.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (every edge is passable).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	// OnSettle is called once per vertex when its distance becomes final,
	// in extraction order.
	OnSettle func(id string, dist int64)

	// OnRelax is called whenever a shorter tentative distance to `to` is found via `from`.
	OnRelax func(from, to string, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option configures Run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable edges and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		OnSettle:         func(string, int64) {},
		OnRelax:          func(string, string, int64) {},
	}
}

// WithMaxDistance caps the distances the run will record.
//
//	d ≥ 0: vertices farther than d stay Unvisited
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ t as impassable.
//
//	t > 0: threshold
//	t ≤ 0: invalid option → ErrOptionViolation
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithOnSettle registers a callback run when a vertex is finalized.
func WithOnSettle(fn func(id string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(from, to string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
