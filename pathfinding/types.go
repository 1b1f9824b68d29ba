package pathfinding

import (
	"errors"
	"math"
)

// Sentinel errors returned by the pathfinding package.
var (
	// ErrOutOfBounds indicates a search endpoint outside the grid.
	ErrOutOfBounds = errors.New("pathfinding: endpoint out of grid bounds")

	// ErrNoPath indicates that no walkable route connects start and end.
	ErrNoPath = errors.New("pathfinding: no path found")
)

const (
	// StraightCost is the cost of one orthogonal step.
	StraightCost = 10

	// DiagonalCost is the cost of one diagonal step (≈ 10·√2).
	DiagonalCost = 14

	// Infinity is the sentinel for unknown g, h and f costs.
	Infinity = math.MaxInt
)

// offsets lists the 8 compass neighbors in expansion order:
// left column, right column, then straight down and up.
var offsets = [8][2]int{
	{-1, 0}, {-1, -1}, {-1, 1},
	{1, 0}, {1, -1}, {1, 1},
	{0, -1}, {0, 1},
}
