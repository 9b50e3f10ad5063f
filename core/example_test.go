package core_test

import (
	"fmt"

	"github.com/katalvlaran/djkalgo/core"
)

// ExampleBuild demonstrates building a small directed graph and querying it.
func ExampleBuild() {
	// 1) Build from an edge list; vertices are created from the endpoints.
	g := core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 8},
		{From: "a", To: "c", Weight: 5},
		{From: "b", To: "c", Weight: 0},
	})

	// 2) Inspect vertices and adjacency.
	fmt.Println("Vertices:", g.Vertices())
	nbrs, _ := g.Neighbors("a")
	fmt.Println("Neighbors of a:", nbrs)

	// 3) Edges are one-way.
	_, back := g.Weight("b", "a")
	fmt.Println("Edge b→a exists?", back)

	// Output:
	// Vertices: [a b c]
	// Neighbors of a: [{b 8} {c 5}]
	// Edge b→a exists? false
}

// ExampleBuild_duplicates shows the last-write-wins rule for repeated edges.
func ExampleBuild_duplicates() {
	g := core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 9},
		{From: "a", To: "b", Weight: 4},
	})
	w, _ := g.Weight("a", "b")
	fmt.Println(g.EdgeCount(), w)

	// Output:
	// 1 4
}
