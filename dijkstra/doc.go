// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Run(g, start) returns a Tree holding, for every vertex, its shortest
//     distance from start and a tagged predecessor State
//     (Unvisited, Origin, or Reached via a predecessor).
//   - Tree.Path(end) walks the predecessor chain back to the origin and
//     returns the source→end sequence of (vertex, cumulative distance),
//     or an explicit unreached Path.
//   - Tree.Paths() does the same for every vertex.
//
// Algorithm:
//
//   - The priority set is seeded with every vertex: the source at 0,
//     every other vertex at Infinity.
//   - The vertex with the smallest distance is extracted; ties go to the
//     lexicographically smallest name, so results are deterministic.
//   - Extracting a vertex at Infinity ends the run: everything left is
//     unreachable and stays Unvisited.
//   - For each arc u→v with weight w, alt = dist(u) + w; if alt < dist(v)
//     then dist(v) = alt, pred(v) = u, and v moves up in the priority set
//     (indexed heap, decrease-key via heap.Fix).
//   - Additions saturate at Infinity, so weights close to math.MaxInt64
//     never overflow.
//
// The graph is never mutated. Running twice from the same start on the
// same graph yields identical Trees.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Options:
//
//	– WithMaxDistance(d):      do not record distances beyond d.
//	– WithInfEdgeThreshold(t): treat edges with weight ≥ t as impassable.
//	– WithOnSettle(fn):        observe finalization order.
//	– WithOnRelax(fn):         observe each improvement.
//
// Errors (sentinel):
//
//	– ErrNilGraph        graph pointer is nil.
//	– ErrUnknownVertex   start (Run) or end (Path, Distance, Predecessor) is absent.
//	– ErrOptionViolation an option received an invalid value.
//
// An unreachable vertex is not an error: its Path has Reached == false.
//
// Example usage:
//
//	t, err := dijkstra.Run(g, "a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := t.Path("e")
//	fmt.Println(p) // a -> c(5) -> d(16) -> e(59)
package dijkstra
