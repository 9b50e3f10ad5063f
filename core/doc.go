// Package core provides the Graph Model: an immutable, directed, weighted
// graph built once from a list of edges.
//
// The Graph G = (V, E) is stored as an arena:
//
//   - every distinct vertex name gets a dense integer index (first appearance order);
//   - every vertex owns a neighbour mapping target → weight, frozen into a
//     slice of Arc sorted by target name.
//
// Construction:
//
//	g := core.Build([]core.Edge{
//		{From: "a", To: "b", Weight: 8},
//		{From: "a", To: "c", Weight: 5},
//	})
//
//	– Edges are directed. Add the reverse Edge yourself for a two-way road.
//	– Duplicate (From, To) pairs: the later edge wins.
//	– WithVertices("x") registers a vertex that has no edges.
//
// Queries:
//
//	Len() int                          // O(1)
//	HasVertex(id string) bool          // O(1)
//	Index(id string) (int, bool)       // O(1)
//	Name(i int) string                 // O(1)
//	Arcs(i int) []Arc                  // O(1), shared slice
//	Vertices() []string                // O(V log V), sorted
//	Neighbors(id string) ([]Neighbor, error)
//	Weight(from, to string) (int64, bool)
//	Edges() []Edge                     // sorted by From, then To
//
// Errors:
//
//	ErrVertexNotFound - a query referenced a vertex that does not exist.
//
// A Graph never changes after Build, so it may be shared freely between
// goroutines and between shortest-path runs.
package core
