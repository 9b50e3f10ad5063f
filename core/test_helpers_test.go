// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/djkalgo/core"

// Common vertex IDs used across core tests.
const (
	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"
	VertexE = "e"
	VertexF = "f"

	VertexX = "x"
	VertexY = "y"
)

// referenceEdges is the nine-edge directed graph used throughout the project.
func referenceEdges() []core.Edge {
	return []core.Edge{
		{From: VertexA, To: VertexB, Weight: 8},
		{From: VertexA, To: VertexC, Weight: 5},
		{From: VertexA, To: VertexF, Weight: 3},
		{From: VertexB, To: VertexC, Weight: 0},
		{From: VertexB, To: VertexD, Weight: 16},
		{From: VertexC, To: VertexD, Weight: 11},
		{From: VertexC, To: VertexF, Weight: 84},
		{From: VertexD, To: VertexE, Weight: 43},
		{From: VertexE, To: VertexF, Weight: 11},
	}
}
