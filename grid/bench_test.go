package grid_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkElement measures bounded lookups including misses at the edges.
func BenchmarkElement(b *testing.B) {
	const n = 512
	g, err := grid.New(n, n, func(_ grid.Notifier, x, y int) int { return x ^ y })
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := i%(n+2)-1, (i/n)%(n+2)-1
		_, _ = g.Element(x, y)
	}
}

// BenchmarkXY measures world-to-cell mapping.
func BenchmarkXY(b *testing.B) {
	g, err := grid.New(256, 256, func(grid.Notifier, int, int) struct{} { return struct{}{} }, grid.WithCellSize(0.75))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	pos := r3.Vec{X: 91.3, Z: 12.8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.XY(pos)
	}
}
