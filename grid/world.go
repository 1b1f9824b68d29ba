package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// WorldPosition returns the world position of the lower corner of cell
// (x,y): Origin + (x,y)*CellSize along the grid's axis pair.
// Coordinates outside the grid are extrapolated, not rejected.
func (g *Grid[T]) WorldPosition(x, y int) r3.Vec {
	return r3.Add(g.origin, r3.Scale(g.cellSize, g.planeVec(float64(x), float64(y))))
}

// CellCenter returns the world position of the middle of cell (x,y).
func (g *Grid[T]) CellCenter(x, y int) r3.Vec {
	return r3.Add(g.origin, r3.Scale(g.cellSize, g.planeVec(float64(x)+0.5, float64(y)+0.5)))
}

// XY maps a world position to the coordinates of the cell that contains it
// by flooring (pos-Origin)/CellSize per axis. A position on a cell's lower
// boundary belongs to that cell. The result may lie outside the grid.
func (g *Grid[T]) XY(pos r3.Vec) (x, y int) {
	rel := r3.Sub(pos, g.origin)
	u, v := rel.X, rel.Z
	if g.axis == AxisXY {
		v = rel.Y
	}

	return int(math.Floor(u / g.cellSize)), int(math.Floor(v / g.cellSize))
}

// planeVec lifts plane coordinates (u,v) into world space.
func (g *Grid[T]) planeVec(u, v float64) r3.Vec {
	if g.axis == AxisXY {
		return r3.Vec{X: u, Y: v}
	}

	return r3.Vec{X: u, Z: v}
}
