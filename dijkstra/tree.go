package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/djkalgo/core"
)

// link is the arena-indexed form of State.
type link struct {
	kind StateKind
	via  int // predecessor index; the source points at itself; -1 when Unvisited
}

// Tree is the shortest-path tree produced by Run: one distance and one
// predecessor state per vertex, stored parallel to the graph arena.
// A Tree is read-only and safe for concurrent readers.
type Tree struct {
	g      *core.Graph
	source int
	dist   []int64
	links  []link
	order  []int // extraction order of finalized vertices
}

// Source returns the name of the start vertex.
func (t *Tree) Source() string { return t.g.Name(t.source) }

// Graph returns the graph the tree was computed over.
func (t *Tree) Graph() *core.Graph { return t.g }

// Distance returns the shortest distance from the source to id,
// or Infinity when id was not reached.
func (t *Tree) Distance(id string) (int64, error) {
	v, err := t.lookup(id)
	if err != nil {
		return 0, err
	}

	return t.dist[v], nil
}

// Predecessor returns the tagged predecessor state of id.
func (t *Tree) Predecessor(id string) (State, error) {
	v, err := t.lookup(id)
	if err != nil {
		return State{}, err
	}

	return t.state(v), nil
}

// Distances returns every vertex's distance keyed by name.
func (t *Tree) Distances() map[string]int64 {
	out := make(map[string]int64, len(t.dist))
	for v, d := range t.dist {
		out[t.g.Name(v)] = d
	}

	return out
}

// Settled returns the finalized vertices in the order they were extracted.
// Unreached vertices are not listed.
func (t *Tree) Settled() []string {
	out := make([]string, len(t.order))
	for i, v := range t.order {
		out[i] = t.g.Name(v)
	}

	return out
}

// Path reconstructs the shortest path from the source to end.
//
// The predecessor chain is walked back from end until the Origin, then
// reversed. An unreached end yields a Path with Reached == false and no hops.
//
// Errors:
//   - ErrUnknownVertex: end is not a vertex of the graph.
func (t *Tree) Path(end string) (Path, error) {
	v, err := t.lookup(end)
	if err != nil {
		return Path{}, err
	}

	return t.path(v), nil
}

// Paths reconstructs the path to every vertex of the graph, keyed by name.
// Callers must not depend on map iteration order.
func (t *Tree) Paths() map[string]Path {
	out := make(map[string]Path, len(t.dist))
	for v := range t.dist {
		out[t.g.Name(v)] = t.path(v)
	}

	return out
}

func (t *Tree) path(v int) Path {
	p := Path{Target: t.g.Name(v)}
	if t.links[v].kind == Unvisited {
		return p
	}

	// Chains are acyclic and at most V long; the bound only guards misuse
	// with negative weights.
	var rev []Hop
	for steps := 0; steps <= len(t.links); steps++ {
		rev = append(rev, Hop{Vertex: t.g.Name(v), Distance: t.dist[v]})
		if t.links[v].kind == Origin {
			break
		}
		v = t.links[v].via
	}

	p.Reached = true
	p.Hops = make([]Hop, len(rev))
	for i, h := range rev {
		p.Hops[len(rev)-1-i] = h
	}

	return p
}

func (t *Tree) state(v int) State {
	l := t.links[v]
	if l.kind == Reached {
		return State{Kind: Reached, Via: t.g.Name(l.via)}
	}

	return State{Kind: l.kind}
}

func (t *Tree) lookup(id string) (int, error) {
	v, ok := t.g.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return v, nil
}
