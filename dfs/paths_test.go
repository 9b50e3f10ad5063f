package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/djkalgo/core"
	"github.com/katalvlaran/djkalgo/dfs"
)

// buildDiamond constructs a→b(1), a→c(4), b→c(2), b→d(6), c→d(1), d→a(1).
// The d→a back edge makes sure enumeration never revisits a vertex.
func buildDiamond() *core.Graph {
	return core.Build([]core.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 4},
		{From: "b", To: "c", Weight: 2},
		{From: "b", To: "d", Weight: 6},
		{From: "c", To: "d", Weight: 1},
		{From: "d", To: "a", Weight: 1},
	}, core.WithVertices("z"))
}

func TestAllPaths_Diamond(t *testing.T) {
	paths, err := dfs.AllPaths(buildDiamond(), "a", "d")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"a", "b", "c", "d"},
		{"a", "b", "d"},
		{"a", "c", "d"},
	}, paths)
}

func TestAllPaths_SameVertex(t *testing.T) {
	paths, err := dfs.AllPaths(buildDiamond(), "b", "b")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"b"}}, paths)
}

func TestAllPaths_NoPath(t *testing.T) {
	paths, err := dfs.AllPaths(buildDiamond(), "a", "z")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMinCosts_Diamond(t *testing.T) {
	costs, err := dfs.MinCosts(buildDiamond(), "a")
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"a": 0, "b": 1, "c": 3, "d": 4}, costs)
}

func TestMinCosts_Errors(t *testing.T) {
	_, err := dfs.MinCosts(nil, "a")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.MinCosts(buildDiamond(), "nope")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.AllPaths(buildDiamond(), "a", "nope")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.MinCosts(buildDiamond(), "a", dfs.WithMaxPaths(0))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.MinCosts(buildDiamond(), "a", dfs.WithMaxPaths(2))
	assert.ErrorIs(t, err, dfs.ErrTooManyPaths)
}
