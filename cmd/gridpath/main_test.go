package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/pathfinding"
)

func TestParseCell(t *testing.T) {
	x, y, err := parseCell("3, 7")
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)

	for _, bad := range []string{"", "3", "1,2,3", "a,1", "1,b"} {
		_, _, err := parseCell(bad)
		assert.Error(t, err, "parseCell(%q)", bad)
	}
}

func TestSampleLayout(t *testing.T) {
	l, err := layout.LoadLayout("testdata/maze.json")
	require.NoError(t, err)
	pf, err := l.Build()
	require.NoError(t, err)

	path, err := pf.FindPath(0, 0, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 80, pathfinding.PathCost(path))
}
