package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/pathfinding"
)

// TestNode_Defaults checks the state of a freshly built node.
func TestNode_Defaults(t *testing.T) {
	pf, err := pathfinding.New(3, 2)
	require.NoError(t, err)
	n, ok := pf.Node(2, 1)
	require.True(t, ok)

	assert.Equal(t, 2, n.X())
	assert.Equal(t, 1, n.Y())
	assert.True(t, n.Walkable())
	assert.Equal(t, pathfinding.Infinity, n.GCost())
	assert.Equal(t, pathfinding.Infinity, n.HCost())
	assert.Equal(t, pathfinding.Infinity, n.FCost())
	assert.Nil(t, n.Previous())
	assert.False(t, n.Valid())
	assert.Equal(t, "", n.String())
}

// TestNode_String covers the three renderings.
func TestNode_String(t *testing.T) {
	pf, err := pathfinding.New(5, 5)
	require.NoError(t, err)
	_, err = pf.FindPath(0, 0, 4, 4)
	require.NoError(t, err)

	start, _ := pf.Node(0, 0)
	assert.Equal(t, "0 + 56 = 56", start.String())
	mid, _ := pf.Node(2, 2)
	assert.Equal(t, "28 + 28 = 56", mid.String())

	mid.SetWalkable(false)
	assert.Equal(t, "*", mid.String())
}

// TestNode_CalculateFCost keeps Infinity from overflowing.
func TestNode_CalculateFCost(t *testing.T) {
	pf, err := pathfinding.New(1, 1)
	require.NoError(t, err)
	n, _ := pf.Node(0, 0)
	n.CalculateFCost()
	assert.Equal(t, pathfinding.Infinity, n.FCost())
	assert.Greater(t, n.FCost(), 0)
}

// TestDistanceCost checks the octile metric.
func TestDistanceCost(t *testing.T) {
	cases := []struct {
		name           string
		ax, ay, bx, by int
		want           int
	}{
		{"Same", 3, 3, 3, 3, 0},
		{"Straight", 0, 0, 4, 0, 40},
		{"Diagonal", 0, 0, 4, 4, 56},
		{"Mixed", 1, 2, 6, 4, 2*14 + 3*10},
		{"Negative", 0, 0, -3, 1, 14 + 2*10},
		{"Symmetric", 6, 4, 1, 2, 2*14 + 3*10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pathfinding.DistanceCost(tc.ax, tc.ay, tc.bx, tc.by))
		})
	}
}

// TestCost_Neighbors: every single move costs StraightCost or DiagonalCost.
func TestCost_Neighbors(t *testing.T) {
	pf, err := pathfinding.New(3, 3)
	require.NoError(t, err)
	c, _ := pf.Node(1, 1)
	for _, nb := range pf.Neighbors(c) {
		want := pathfinding.StraightCost
		if nb.X() != 1 && nb.Y() != 1 {
			want = pathfinding.DiagonalCost
		}
		assert.Equal(t, want, pf.Cost(c, nb))
	}
	assert.Equal(t, 0, pathfinding.PathCost(nil))
}

// TestRender draws walls, highlighted cells and open cells, top row first.
func TestRender(t *testing.T) {
	pf, err := pathfinding.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, pf.SetWalkable(1, 1, false))

	var hl []*pathfinding.Node
	for x := 0; x < 3; x++ {
		n, _ := pf.Node(x, 0)
		hl = append(hl, n)
	}

	assert.Equal(t, "...\n.#.\n***\n", pf.Render(hl))
	assert.Equal(t, "...\n.#.\n...\n", pf.Render(nil))
}
