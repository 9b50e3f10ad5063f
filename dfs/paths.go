// Package dfs enumerates simple directed paths of a core.Graph by depth-first
// search. It is the brute-force reference for shortest-path results: with
// non-negative weights, the cheapest simple path to a vertex is its shortest
// distance.
//
// Key features:
//   - AllPaths(g, from, to): every simple path from → to, in deterministic order
//   - MinCosts(g, from): the cheapest simple-path cost to every reachable vertex
//   - WithMaxPaths(n): caps the exponential enumeration
//
// Complexity:
//
//   - Time:   O(number of simple paths · V) in the worst case.
//   - Memory: O(V) for the recursion stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if from (or to) is missing.
//   - ErrTooManyPaths           if MaxPaths is exceeded.
//   - ErrOptionViolation        if an option is invalid.
package dfs

import (
	"math"

	"github.com/katalvlaran/djkalgo/core"
)

// pathWalker holds the recursion state of one enumeration.
type pathWalker struct {
	g        *core.Graph
	opts     Options
	onPath   []bool // arena index → currently on the stack
	stack    []int  // current path, source first
	explored int    // partial paths explored so far

	// visit is called for each partial path; returning false prunes descent.
	visit func(stack []int, cost int64) bool
}

// AllPaths returns every simple directed path from → to as vertex name
// sequences. Neighbours are explored in name order, so the result order is
// deterministic. from == to yields the single path [from].
func AllPaths(g *core.Graph, from, to string, opts ...Option) ([][]string, error) {
	w, src, err := newWalker(g, from, opts)
	if err != nil {
		return nil, err
	}
	dst, ok := g.Index(to)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	var out [][]string
	w.visit = func(stack []int, _ int64) bool {
		if stack[len(stack)-1] != dst {
			return true
		}
		path := make([]string, len(stack))
		for i, v := range stack {
			path[i] = g.Name(v)
		}
		out = append(out, path)

		return false
	}
	if err = w.walk(src, 0); err != nil {
		return nil, err
	}

	return out, nil
}

// MinCosts returns, for every vertex reachable from `from`, the minimum total
// weight over all simple directed paths. Unreachable vertices are absent.
func MinCosts(g *core.Graph, from string, opts ...Option) (map[string]int64, error) {
	w, src, err := newWalker(g, from, opts)
	if err != nil {
		return nil, err
	}

	best := make(map[string]int64)
	w.visit = func(stack []int, cost int64) bool {
		id := g.Name(stack[len(stack)-1])
		if cur, seen := best[id]; !seen || cost < cur {
			best[id] = cost
		}

		return true
	}
	if err = w.walk(src, 0); err != nil {
		return nil, err
	}

	return best, nil
}

func newWalker(g *core.Graph, from string, opts []Option) (*pathWalker, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	src, ok := g.Index(from)
	if !ok {
		return nil, 0, ErrStartVertexNotFound
	}

	return &pathWalker{
		g:      g,
		opts:   o,
		onPath: make([]bool, g.Len()),
		stack:  make([]int, 0, g.Len()),
	}, src, nil
}

// walk extends the current path with v, reports it, and recurses into every
// neighbour not already on the path.
func (w *pathWalker) walk(v int, cost int64) error {
	w.explored++
	if w.explored > w.opts.MaxPaths {
		return ErrTooManyPaths
	}

	w.onPath[v] = true
	w.stack = append(w.stack, v)
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		w.onPath[v] = false
	}()

	if !w.visit(w.stack, cost) {
		return nil
	}
	for _, a := range w.g.Arcs(v) {
		if w.onPath[a.To] {
			continue
		}
		if err := w.walk(a.To, addSat(cost, a.Weight)); err != nil {
			return err
		}
	}

	return nil
}

func addSat(d, w int64) int64 {
	if w > 0 && d > math.MaxInt64-w {
		return math.MaxInt64
	}

	return d + w
}
