package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
)

// BenchmarkNew measures arena allocation and topology wiring for 100×100.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = grid.New(100, 100)
	}
}

// BenchmarkCheckPerfect runs the spanning-tree check on a serpentine maze.
func BenchmarkCheckPerfect(b *testing.B) {
	const n = 100
	g, _ := grid.New(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c+1 < n; c++ {
			_ = g.Link(grid.Coord{Row: r, Column: c}, grid.Coord{Row: r, Column: c + 1})
		}
		if r+1 < n {
			_ = g.Link(grid.Coord{Row: r, Column: 0}, grid.Coord{Row: r + 1, Column: 0})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.CheckPerfect(); err != nil {
			b.Fatal(err)
		}
	}
}
