package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is a fixed-size 2D container of elements of type T.
// Dimensions and world mapping are immutable after New.
type Grid[T any] struct {
	width, height int
	cellSize      float64
	origin        r3.Vec
	axis          Axis

	cells []T // row-major: cells[y*width+x]

	observers []subscription
	nextSubID uint64
}

type subscription struct {
	id uint64
	fn Observer
}

// New allocates a width×height grid and fills it by calling factory for
// every cell in row-major order (y outer, x inner).
// Returns ErrInvalidDimensions, ErrNilFactory or ErrBadCellSize on bad input.
// Width×Height must fit in an int.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, factory Factory[T], opts ...Option) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow int", ErrInvalidDimensions, width, height)
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CellSize <= 0 || math.IsNaN(cfg.CellSize) || math.IsInf(cfg.CellSize, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadCellSize, cfg.CellSize)
	}

	g := &Grid[T]{
		width:    width,
		height:   height,
		cellSize: cfg.CellSize,
		origin:   cfg.Origin,
		axis:     cfg.Axis,
		cells:    make([]T, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.Index(x, y)] = factory(g, x, y)
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// CellSize returns the world-unit edge length of one cell.
func (g *Grid[T]) CellSize() float64 { return g.cellSize }

// Origin returns the world position of cell (0,0).
func (g *Grid[T]) Origin() r3.Vec { return g.origin }

// Axis returns the world plane the grid occupies.
func (g *Grid[T]) Axis() Axis { return g.axis }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller must ensure (x,y) is in bounds.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Element returns the element at (x,y) and true, or the zero value and
// false when (x,y) is outside the grid.
func (g *Grid[T]) Element(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.cells[g.Index(x, y)], true
}

// ElementAt returns the element of the cell containing pos.
func (g *Grid[T]) ElementAt(pos r3.Vec) (T, bool) {
	x, y := g.XY(pos)

	return g.Element(x, y)
}

// SetElement replaces the element at (x,y) and notifies observers.
// Returns ErrOutOfRange, without notifying, when (x,y) is outside the grid.
func (g *Grid[T]) SetElement(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, x, y, g.width, g.height)
	}
	g.cells[g.Index(x, y)] = v
	g.TriggerChanged(x, y)

	return nil
}

// SetElementAt replaces the element of the cell containing pos.
func (g *Grid[T]) SetElementAt(pos r3.Vec, v T) error {
	x, y := g.XY(pos)

	return g.SetElement(x, y, v)
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for i, v := range g.cells {
		x, y := g.Coordinate(i)
		fn(x, y, v)
	}
}

// Clamp limits p to [0,Width-1]×[0,Height-1].
func (g *Grid[T]) Clamp(p Point) Point {
	return Point{
		X: clampInt(p.X, 0, g.width-1),
		Y: clampInt(p.Y, 0, g.height-1),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
