// Package djkalgo computes single-source shortest paths over small directed,
// weighted graphs and explains the result.
//
// 🚀 What is djkalgo?
//
//	A compact toolkit built around Dijkstra's algorithm:
//		• core/      — immutable arena graph: dense ids, sorted arcs, name lookup
//		• dijkstra/  — the engine: distances, predecessors, settle order, paths
//		• bfs/, dfs/ — breadth-first reachability and brute-force simple paths,
//		               used to cross-check the engine
//		• config/    — graph files in TOML or HCL
//		• render/    — Graphviz DOT/SVG of the shortest-path tree
//		• cmd/djkalgo — the command-line front end
//
// ✨ Guarantees
//
//   - Deterministic – equal distances are settled in name order
//   - Pure runs – the graph is never mutated; every run starts fresh
//   - No overflow – distances saturate at dijkstra.Infinity
//
// Quick example, the built-in reference graph:
//
//	a ─8─▶ b ─16─▶ d ─43─▶ e
//	│      │0      ▲       │11
//	├─5─▶  c ──11──┘       ▼
//	└─3──────────────────▶ f ◀─84─ c
//
// Shortest path a → e:  a -> c(5) -> d(16) -> e(59)
//
//	go install github.com/katalvlaran/djkalgo/cmd/djkalgo@latest
//	djkalgo path --from a --to e
package djkalgo
