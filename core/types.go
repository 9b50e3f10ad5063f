// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph Model types (Edge, Arc, Neighbor, Graph), build options and sentinel errors.
// Policy:
//   - A Graph is frozen once Build returns; nothing in this package mutates it afterwards.
//   - Vertices live in a dense arena: index i ↔ names[i]; algorithms work on indices.

package core

import "errors"

// Sentinel errors for core graph queries.
var (
	// ErrVertexNotFound indicates a query referenced a vertex absent from the Graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one directed, weighted connection From→To as supplied to Build.
//
// Edges are directed; Build never creates the reverse arc implicitly.
// Weight is expected to be ≥ 0; shortest-path algorithms rely on it.
type Edge struct {
	// From is the source vertex name.
	From string

	// To is the destination vertex name.
	To string

	// Weight is the traversal cost of the edge.
	Weight int64
}

// Arc is an outgoing adjacency entry addressed by arena index.
type Arc struct {
	To     int   // arena index of the target vertex
	Weight int64 // edge weight
}

// Neighbor is an outgoing adjacency entry addressed by vertex name.
type Neighbor struct {
	ID     string // target vertex name
	Weight int64  // edge weight
}

// Graph is an immutable directed weighted graph.
//
// Vertex names are unique keys. Each vertex owns a neighbour mapping
// (target → weight) that is frozen into a slice of Arcs sorted by target name,
// so every enumeration below is deterministic.
// A Graph is safe for concurrent readers.
type Graph struct {
	names []string       // arena: index → name, first-appearance order
	index map[string]int // name → arena index
	arcs  [][]Arc        // arena index → outgoing arcs, sorted by target name
	edges int            // number of distinct (from, to) pairs
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	vertices []string
}

// WithVertices registers vertices before any edge is read.
// Use it for vertices that have no incident edges at all.
// Registered names keep their relative order in the arena.
func WithVertices(ids ...string) BuildOption {
	return func(c *buildConfig) {
		c.vertices = append(c.vertices, ids...)
	}
}
