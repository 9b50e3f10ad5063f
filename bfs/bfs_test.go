package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/djkalgo/bfs"
	"github.com/katalvlaran/djkalgo/core"
)

// buildReference returns the nine-edge directed reference graph plus an isolated vertex "x".
func buildReference() *core.Graph {
	return core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 8},
		{From: "a", To: "c", Weight: 5},
		{From: "a", To: "f", Weight: 3},
		{From: "b", To: "c", Weight: 0},
		{From: "b", To: "d", Weight: 16},
		{From: "c", To: "d", Weight: 11},
		{From: "c", To: "f", Weight: 84},
		{From: "d", To: "e", Weight: 43},
		{From: "e", To: "f", Weight: 11},
	}, core.WithVertices("x"))
}

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(buildReference(), "zzz")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(buildReference(), "a", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(buildReference(), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "f", "d", "e"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 1, "f": 1, "d": 2, "e": 3}, res.Depth)
	assert.False(t, res.Reachable("x"))

	path, err := res.PathTo("e")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "e"}, path)

	_, err = res.PathTo("x")
	assert.Error(t, err)
}

func TestBFS_DirectedOnly(t *testing.T) {
	res, err := bfs.BFS(buildReference(), "e")
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "f"}, res.Order)
	assert.False(t, res.Reachable("a"))
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(buildReference(), "a", bfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", "c", "f"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(buildReference(), "a", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "c" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(buildReference(), "a", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
