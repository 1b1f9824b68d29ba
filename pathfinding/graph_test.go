package pathfinding_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridpath/pathfinding"
)

// TestWeightedGraph_Edges checks edge placement around a blocked cell.
func TestWeightedGraph_Edges(t *testing.T) {
	pf, err := pathfinding.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, pf.SetWalkable(1, 1, false))

	g := pf.WeightedGraph()
	id := func(x, y int) int64 {
		n, ok := pf.Node(x, y)
		require.True(t, ok)
		return pf.ID(n)
	}

	assert.Len(t, graph.NodesOf(g.Nodes()), 4)
	assert.Len(t, graph.EdgesOf(g.Edges()), 9)

	assert.True(t, g.HasEdgeFromTo(id(1, 1), id(0, 0)), "edges leave blocked cells")
	assert.False(t, g.HasEdgeFromTo(id(0, 0), id(1, 1)), "edges never enter blocked cells")

	w, ok := g.Weight(id(1, 0), id(0, 1))
	require.True(t, ok)
	assert.Equal(t, float64(pathfinding.DiagonalCost), w)
	w, ok = g.Weight(id(0, 0), id(1, 0))
	require.True(t, ok)
	assert.Equal(t, float64(pathfinding.StraightCost), w)
}

// TestNodeByID round-trips IDs and rejects unknown ones.
func TestNodeByID(t *testing.T) {
	pf, err := pathfinding.New(4, 3)
	require.NoError(t, err)
	for id := int64(0); id < 12; id++ {
		n, ok := pf.NodeByID(id)
		require.True(t, ok)
		assert.Equal(t, id, pf.ID(n))
	}
	_, ok := pf.NodeByID(12)
	assert.False(t, ok)
	_, ok = pf.NodeByID(-1)
	assert.False(t, ok)
}

// TestFindPath_MatchesDijkstra compares A* costs with gonum's Dijkstra on
// random grids: reachability must agree and costs must be equal.
func TestFindPath_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const w, h = 12, 9

	for round := 0; round < 20; round++ {
		pf, err := pathfinding.New(w, h)
		require.NoError(t, err)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Intn(100) < 30 {
					require.NoError(t, pf.SetWalkable(x, y, false))
				}
			}
		}
		g := pf.WeightedGraph()

		for q := 0; q < 10; q++ {
			sx, sy := rng.Intn(w), rng.Intn(h)
			ex, ey := rng.Intn(w), rng.Intn(h)
			start, _ := pf.Node(sx, sy)
			end, _ := pf.Node(ex, ey)

			want := path.DijkstraFrom(simple.Node(pf.ID(start)), g).WeightTo(pf.ID(end))
			got, err := pf.FindPath(sx, sy, ex, ey)

			if math.IsInf(want, 1) {
				require.True(t, errors.Is(err, pathfinding.ErrNoPath),
					"round %d (%d,%d)->(%d,%d): want no path, got err=%v", round, sx, sy, ex, ey, err)
				continue
			}
			require.NoError(t, err, "round %d (%d,%d)->(%d,%d)", round, sx, sy, ex, ey)
			requireValidPath(t, got, sx, sy, ex, ey)
			require.Equal(t, int(want), pathfinding.PathCost(got),
				"round %d (%d,%d)->(%d,%d)", round, sx, sy, ex, ey)
			require.Equal(t, int(want), end.GCost())
		}
	}
}
