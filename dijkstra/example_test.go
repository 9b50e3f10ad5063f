// Package dijkstra_test provides examples demonstrating how to use the engine.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/djkalgo/core"
	"github.com/katalvlaran/djkalgo/dijkstra"
)

// ExampleRun reproduces the reference scenario: start "a", end "e".
func ExampleRun() {
	// 1) Build the directed, weighted reference graph.
	g := core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 8},
		{From: "a", To: "c", Weight: 5},
		{From: "a", To: "f", Weight: 3},
		{From: "b", To: "c", Weight: 0},
		{From: "b", To: "d", Weight: 16},
		{From: "c", To: "d", Weight: 11},
		{From: "c", To: "f", Weight: 84},
		{From: "d", To: "e", Weight: 43},
		{From: "e", To: "f", Weight: 11},
	})

	// 2) Run from "a".
	tree, err := dijkstra.Run(g, "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Reconstruct the path to "e".
	p, err := tree.Path("e")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	// Output: a -> c(5) -> d(16) -> e(59)
}

// ExampleTree_Paths prints the path to every vertex, including an unreached one.
func ExampleTree_Paths() {
	g := core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 2},
		{From: "b", To: "c", Weight: 3},
		{From: "d", To: "a", Weight: 1},
	})
	tree, _ := dijkstra.Run(g, "a")

	paths := tree.Paths()
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(paths[id])
	}
	// Output:
	// a
	// a -> b(2)
	// a -> b(2) -> c(5)
	// d(unreached)
}

// ExampleRun_unknownVertex shows the recoverable error for a missing start vertex.
func ExampleRun_unknownVertex() {
	g := core.Build([]core.Edge{{From: "a", To: "b", Weight: 1}})
	_, err := dijkstra.Run(g, "z")
	fmt.Println(err)
	// Output: dijkstra: unknown vertex: start "z"
}

// ExampleWithInfEdgeThreshold finds the fastest route between city
// intersections when one road is closed, modelled as a prohibitively
// large travel time.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]<--1---[C]    <-- C->D is closed
//	  |          \10
//	5 |          [E]
//	  |            \3
//	 [D]---6------>[F]
func ExampleWithInfEdgeThreshold() {
	g := core.Build([]core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "C", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 5},
		{From: "C", To: "D", Weight: math.MaxInt32},
		{From: "C", To: "E", Weight: 10},
		{From: "D", To: "F", Weight: 6},
		{From: "E", To: "F", Weight: 3},
	})

	// Treat any edge of MaxInt32 minutes or more as impassable.
	tree, err := dijkstra.Run(g, "A", dijkstra.WithInfEdgeThreshold(math.MaxInt32))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := tree.Path("F")
	fmt.Println(p)
	fmt.Println("minutes:", p.Cost())
	// Output:
	// A -> C(2) -> B(3) -> D(8) -> F(14)
	// minutes: 14
}
