package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/djkalgo/core"
)

// Run computes shortest distances and predecessor links from start to every
// vertex of g and returns them as a Tree.
//
// Run never mutates g: each call allocates its own distance and predecessor
// arrays, so repeated runs (from the same or a different start) always begin
// from a clean state, and concurrent runs over one Graph are safe.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain start (ErrUnknownVertex).
//
// Edge weights must be non-negative; the result is unspecified otherwise.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Run(g *core.Graph, start string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	src, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownVertex, start)
	}

	r := newRunner(g, src, cfg)
	r.process()

	return r.tree, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	tree    *Tree
	pq      *vertexQueue
}

// newRunner sets every vertex to Unvisited/Infinity, the source to Origin/0,
// and seeds the priority set with all vertices.
func newRunner(g *core.Graph, src int, cfg Options) *runner {
	n := g.Len()
	t := &Tree{
		g:      g,
		source: src,
		dist:   make([]int64, n),
		links:  make([]link, n),
		order:  make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		t.dist[v] = Infinity
		t.links[v] = link{kind: Unvisited, via: -1}
	}
	t.dist[src] = 0
	t.links[src] = link{kind: Origin, via: src}

	names := make([]string, n)
	for v := range names {
		names[v] = g.Name(v)
	}

	return &runner{
		g:       g,
		options: cfg,
		tree:    t,
		pq:      newVertexQueue(t.dist, names),
	}
}

// process repeatedly extracts the closest remaining vertex and relaxes its
// outgoing arcs. Once the closest remaining vertex is at Infinity, every
// vertex still queued is unreachable and the loop stops.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		u := heap.Pop(r.pq).(int)
		d := r.tree.dist[u]
		if d == Infinity {
			break
		}

		r.tree.order = append(r.tree.order, u)
		r.options.OnSettle(r.g.Name(u), d)

		r.relax(u, d)
	}
}

// relax examines each arc u→v and records a strictly shorter path to v.
func (r *runner) relax(u int, du int64) {
	for _, a := range r.g.Arcs(u) {
		v := a.To

		// Already finalized; a non-negative weight cannot improve it.
		if !r.pq.contains(v) {
			continue
		}
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		alt := addSat(du, a.Weight)
		if alt >= r.tree.dist[v] || alt > r.options.MaxDistance {
			continue
		}

		r.tree.dist[v] = alt
		r.tree.links[v] = link{kind: Reached, via: u}
		r.pq.update(v)
		r.options.OnRelax(r.g.Name(u), r.g.Name(v), alt)
	}
}

// addSat returns d + w, saturating at Infinity instead of overflowing.
func addSat(d, w int64) int64 {
	if w > 0 && d > Infinity-w {
		return Infinity
	}

	return d + w
}
