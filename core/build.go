// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Two-pass Graph construction from an edge list.
// Determinism:
//   - Arena indices follow first appearance (WithVertices first, then edges From/To).
//   - Adjacency slices are sorted by target name.

package core

import "sort"

// Build constructs a Graph from an edge list.
//
// Implementation:
//   - Stage 1: Register every name passed via WithVertices.
//   - Stage 2: First pass over edges registers every distinct endpoint name.
//   - Stage 3: Second pass fills each source vertex's neighbour mapping with (target, weight).
//   - Stage 4: Freeze neighbour mappings into name-sorted Arc slices.
//
// Behavior highlights:
//   - The vertex set is exactly the set of names seen (plus WithVertices).
//   - Duplicate (From, To) pairs collapse to one arc; the later edge in the
//     input overwrites the earlier weight (last write wins).
//   - No implicit reverse edges; self-loops are kept as ordinary arcs.
//
// Errors:
//   - None. Any input, including nil or empty, yields a valid Graph.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func Build(edges []Edge, opts ...BuildOption) *Graph {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		names: make([]string, 0, len(cfg.vertices)+len(edges)),
		index: make(map[string]int, len(cfg.vertices)+len(edges)),
	}

	for _, id := range cfg.vertices {
		g.intern(id)
	}

	// one pass to find all vertices
	for _, e := range edges {
		g.intern(e.From)
		g.intern(e.To)
	}

	// another pass to set neighbouring vertices
	neighbours := make([]map[int]int64, len(g.names))
	for _, e := range edges {
		from, to := g.index[e.From], g.index[e.To]
		if neighbours[from] == nil {
			neighbours[from] = make(map[int]int64)
		}
		neighbours[from][to] = e.Weight
	}

	g.arcs = make([][]Arc, len(g.names))
	for i, m := range neighbours {
		if len(m) == 0 {
			continue
		}
		arcs := make([]Arc, 0, len(m))
		for to, w := range m {
			arcs = append(arcs, Arc{To: to, Weight: w})
		}
		sort.Slice(arcs, func(a, b int) bool {
			return g.names[arcs[a].To] < g.names[arcs[b].To]
		})
		g.arcs[i] = arcs
		g.edges += len(arcs)
	}

	return g
}

// intern returns the arena index of id, registering it if unseen.
func (g *Graph) intern(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.names)
	g.names = append(g.names, id)
	g.index[id] = i

	return i
}
