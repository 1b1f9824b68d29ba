package grid

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrNilFactory indicates New was called without an element factory.
	ErrNilFactory = errors.New("grid: element factory is nil")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("grid: cell size must be a positive finite number")
	// ErrOutOfRange indicates a write to coordinates outside the grid.
	ErrOutOfRange = errors.New("grid: coordinates out of range")
)

// Axis selects which two world axes the grid occupies.
type Axis int

const (
	// AxisXZ lays the grid on the horizontal ground plane: grid x → world X,
	// grid y → world Z.
	AxisXZ Axis = iota
	// AxisXY lays the grid on a vertical plane: grid x → world X,
	// grid y → world Y.
	AxisXY
)

// String returns the lower-case axis pair name.
func (a Axis) String() string {
	switch a {
	case AxisXZ:
		return "xz"
	case AxisXY:
		return "xy"
	default:
		return "unknown"
	}
}

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Notifier is the handle an element uses to report its own mutation.
// Grid[T] implements it; elements never see the rest of the grid.
type Notifier interface {
	TriggerChanged(x, y int)
}

// Factory builds the element stored at (x, y).
type Factory[T any] func(n Notifier, x, y int) T

// Observer is called with the coordinates of every changed cell.
type Observer func(x, y int)

// Options contains tunable parameters for grid construction.
type Options struct {
	// CellSize is the world-unit edge length of one cell.
	CellSize float64
	// Origin is the world position of cell (0,0).
	Origin r3.Vec
	// Axis selects the world plane used by WorldPosition and XY.
	Axis Axis
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithCellSize sets the world-unit edge length of one cell.
func WithCellSize(size float64) Option {
	return func(o *Options) {
		o.CellSize = size
	}
}

// WithOrigin sets the world position of cell (0,0).
func WithOrigin(origin r3.Vec) Option {
	return func(o *Options) {
		o.Origin = origin
	}
}

// WithAxis selects the world plane the grid occupies.
func WithAxis(axis Axis) Option {
	return func(o *Options) {
		o.Axis = axis
	}
}

// DefaultOptions returns CellSize=1, Origin at the world origin, AxisXZ.
func DefaultOptions() Options {
	return Options{
		CellSize: 1,
		Axis:     AxisXZ,
	}
}
