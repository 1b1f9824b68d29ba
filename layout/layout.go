// Package layout loads grid layouts from JSON files and builds
// pathfinders from them.
//
// A layout file looks like:
//
//	{
//	  "cell_size": 2,
//	  "origin": [0, 0, 0],
//	  "axis": "xz",
//	  "rows": [
//	    "......",
//	    "..#...",
//	    "..#..."
//	  ],
//	  "blocked": [[5, 0]]
//	}
//
// Rows are listed top first, so the last row is y = 0 and the text reads the
// same way pathfinding.Pathfinder.Render prints it. Width and height default
// to the size of rows and must match it when both are given.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/debuglog"
	"github.com/katalvlaran/gridpath/pathfinding"
)

const (
	// BlockedCell marks an unwalkable cell in Rows.
	BlockedCell = '#'
	// OpenCell marks a walkable cell in Rows.
	OpenCell = '.'

	// MaxCells bounds width×height of a layout.
	MaxCells = 1 << 24

	maxFileSize = 1 * 1024 * 1024 // 1MB
)

// ErrInvalidLayout wraps every validation failure of a layout.
var ErrInvalidLayout = errors.New("layout: invalid layout")

// Layout is the JSON schema of a grid layout. Pointer fields are optional;
// the Get* methods supply defaults for omitted values.
type Layout struct {
	Width    *int        `json:"width,omitempty"`
	Height   *int        `json:"height,omitempty"`
	CellSize *float64    `json:"cell_size,omitempty"`
	Origin   *[3]float64 `json:"origin,omitempty"`
	Axis     *string     `json:"axis,omitempty"` // "xz" (default) or "xy"
	Rows     []string    `json:"rows,omitempty"`
	Blocked  [][2]int    `json:"blocked,omitempty"`
}

var diagLogger *log.Logger

// SetLogWriter configures the diagnostic stream. Pass nil to disable it.
func SetLogWriter(w io.Writer) {
	diagLogger = debuglog.New("[layout] ", w)
}

func diagf(format string, args ...interface{}) { debuglog.Printf(diagLogger, format, args...) }

// LoadLayout reads and validates a layout from a .json file of at most 1MB.
func LoadLayout(path string) (*Layout, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("layout file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat layout file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("layout file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, err
	}
	diagf("loaded %s: %dx%d cell_size=%g axis=%s blocked=%d",
		cleanPath, l.GetWidth(), l.GetHeight(), l.GetCellSize(), l.GetAxis(), l.BlockedCount())

	return l, nil
}

// ParseLayout decodes and validates a layout from JSON.
func ParseLayout(data []byte) (*Layout, error) {
	l := &Layout{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("failed to parse layout JSON: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks dimensions, row shape, cell size, axis and blocked cells.
// Every error it returns wraps ErrInvalidLayout.
func (l *Layout) Validate() error {
	if err := l.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return nil
}

func (l *Layout) validate() error {
	if len(l.Rows) > 0 {
		w := len(l.Rows[0])
		for i, row := range l.Rows {
			if len(row) != w {
				return fmt.Errorf("row %d has length %d, want %d", i, len(row), w)
			}
			for j := 0; j < len(row); j++ {
				if row[j] != BlockedCell && row[j] != OpenCell {
					return fmt.Errorf("row %d col %d: unexpected cell %q", i, j, row[j])
				}
			}
		}
		if l.Width != nil && *l.Width != w {
			return fmt.Errorf("width %d does not match row length %d", *l.Width, w)
		}
		if l.Height != nil && *l.Height != len(l.Rows) {
			return fmt.Errorf("height %d does not match row count %d", *l.Height, len(l.Rows))
		}
	}

	w, h := l.GetWidth(), l.GetHeight()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", w, h)
	}
	if w > MaxCells/h {
		return fmt.Errorf("%dx%d grid exceeds %d cells", w, h, MaxCells)
	}
	if l.CellSize != nil && *l.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %f", *l.CellSize)
	}
	if l.Axis != nil && *l.Axis != "xz" && *l.Axis != "xy" {
		return fmt.Errorf("axis must be \"xz\" or \"xy\", got %q", *l.Axis)
	}
	for _, c := range l.Blocked {
		if c[0] < 0 || c[0] >= w || c[1] < 0 || c[1] >= h {
			return fmt.Errorf("blocked cell (%d,%d) outside %dx%d grid", c[0], c[1], w, h)
		}
	}

	return nil
}

// GetWidth returns width, falling back to the row length.
func (l *Layout) GetWidth() int {
	if l.Width != nil {
		return *l.Width
	}
	if len(l.Rows) > 0 {
		return len(l.Rows[0])
	}
	return 0
}

// GetHeight returns height, falling back to the row count.
func (l *Layout) GetHeight() int {
	if l.Height != nil {
		return *l.Height
	}
	return len(l.Rows)
}

// GetCellSize returns cell_size or the default of 1.
func (l *Layout) GetCellSize() float64 {
	if l.CellSize == nil {
		return 1
	}
	return *l.CellSize
}

// GetOrigin returns origin or the world origin.
func (l *Layout) GetOrigin() r3.Vec {
	if l.Origin == nil {
		return r3.Vec{}
	}
	return r3.Vec{X: l.Origin[0], Y: l.Origin[1], Z: l.Origin[2]}
}

// GetAxis returns the grid axis; "xz" when omitted.
func (l *Layout) GetAxis() grid.Axis {
	if l.Axis != nil && *l.Axis == "xy" {
		return grid.AxisXY
	}
	return grid.AxisXZ
}

// BlockedCount returns the number of blocked cells, counting a cell named
// both in rows and in blocked once.
func (l *Layout) BlockedCount() int {
	seen := make(map[[2]int]struct{})
	l.eachBlocked(func(x, y int) { seen[[2]int{x, y}] = struct{}{} })

	return len(seen)
}

// Build creates a Pathfinder with the layout's dimensions and world mapping
// and marks every blocked cell unwalkable. The layout must be valid.
func (l *Layout) Build() (*pathfinding.Pathfinder, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	pf, err := pathfinding.New(l.GetWidth(), l.GetHeight(),
		grid.WithCellSize(l.GetCellSize()),
		grid.WithOrigin(l.GetOrigin()),
		grid.WithAxis(l.GetAxis()),
	)
	if err != nil {
		return nil, err
	}

	var setErr error
	l.eachBlocked(func(x, y int) {
		if err := pf.SetWalkable(x, y, false); err != nil && setErr == nil {
			setErr = err
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	return pf, nil
}

// eachBlocked calls fn for every blocked cell from rows, then from blocked.
func (l *Layout) eachBlocked(fn func(x, y int)) {
	h := len(l.Rows)
	for i, row := range l.Rows {
		y := h - 1 - i
		for x := 0; x < len(row); x++ {
			if row[x] == BlockedCell {
				fn(x, y)
			}
		}
	}
	for _, c := range l.Blocked {
		fn(c[0], c[1])
	}
}
