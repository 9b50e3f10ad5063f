// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Vertices() and Edges() are sorted lexicographically; Neighbors() by target name.

package core

import "sort"

// Len returns the number of vertices. A nil Graph has none.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.names)
}

// EdgeCount returns the number of distinct directed (From, To) pairs.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// HasVertex reports whether id names a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.Index(id)

	return ok
}

// Index returns the arena index of id.
func (g *Graph) Index(id string) (int, bool) {
	if g == nil {
		return 0, false
	}
	i, ok := g.index[id]

	return i, ok
}

// Name returns the vertex name stored at arena index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) Name(i int) string { return g.names[i] }

// Arcs returns the outgoing arcs of the vertex at arena index i, sorted by
// target name. The returned slice is shared and must not be modified.
func (g *Graph) Arcs(i int) []Arc { return g.arcs[i] }

// Vertices returns all vertex names sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.names))
	copy(out, g.names)
	sort.Strings(out)

	return out
}

// Neighbors returns the outgoing neighbours of id, sorted by target name.
//
// Errors:
//   - ErrVertexNotFound: id is not a vertex of g.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	i, ok := g.Index(id)
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, 0, len(g.arcs[i]))
	for _, a := range g.arcs[i] {
		out = append(out, Neighbor{ID: g.names[a.To], Weight: a.Weight})
	}

	return out, nil
}

// Weight returns the weight of the arc from→to and whether that arc exists.
func (g *Graph) Weight(from, to string) (int64, bool) {
	fi, ok := g.Index(from)
	if !ok {
		return 0, false
	}
	ti, ok := g.Index(to)
	if !ok {
		return 0, false
	}
	for _, a := range g.arcs[fi] {
		if a.To == ti {
			return a.Weight, true
		}
	}

	return 0, false
}

// Edges returns every arc as an Edge, sorted by From then To.
// Duplicate input edges appear once, carrying the surviving weight.
//
// Complexity:
//   - Time O(V log V + E), Space O(E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, 0, g.edges)
	for _, from := range g.Vertices() {
		i := g.index[from]
		for _, a := range g.arcs[i] {
			out = append(out, Edge{From: from, To: g.names[a.To], Weight: a.Weight})
		}
	}

	return out
}
