package grid

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the arena that owns every Cell of a rectangular maze.
// Dimensions are fixed by New; cells are never reallocated.
type Grid struct {
	rows, columns int
	cells         []Cell // row-major
}

// New allocates a rows×columns grid and wires every cell's topological
// neighbors from rectangular adjacency. No links are created.
// Returns ErrInvalidDimensions if rows < 1 or columns < 1.
// Complexity: O(R×C) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, columns, ErrInvalidDimensions)
	}
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cell := &g.cells[g.index(r, c)]
			cell.coord = Coord{Row: r, Column: c}
			cell.links = mapset.New[Coord]()
			for _, d := range Directions {
				n := cell.coord.Step(d)
				if g.InBounds(n) {
					cell.neighbors[d] = n
					cell.present[d] = true
				}
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Size returns rows×columns.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Column >= 0 && c.Column < g.columns
}

// index converts (row, column) to the row-major arena index.
func (g *Grid) index(row, column int) int {
	return row*g.columns + column
}

// Cell returns the cell at (row, column). The boolean is false for
// out-of-range coordinates; that is a lookup miss, not an error.
func (g *Grid) Cell(row, column int) (*Cell, bool) {
	return g.At(Coord{Row: row, Column: column})
}

// At returns the cell at c, or false if c is outside the grid.
func (g *Grid) At(c Coord) (*Cell, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	return &g.cells[g.index(c.Row, c.Column)], true
}

// Cells yields every cell in row-major order. The sequence is finite and
// may be ranged over any number of times.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// EachRow yields each row index with that row's cells in column order.
// The row slice is freshly allocated for every row.
func (g *Grid) EachRow() iter.Seq2[int, []*Cell] {
	return func(yield func(int, []*Cell) bool) {
		for r := 0; r < g.rows; r++ {
			row := make([]*Cell, g.columns)
			for c := range row {
				row[c] = &g.cells[g.index(r, c)]
			}
			if !yield(r, row) {
				return
			}
		}
	}
}

// RandomCell picks a cell uniformly among all rows×columns cells.
func (g *Grid) RandomCell(r Rand) *Cell {
	return &g.cells[r.Intn(len(g.cells))]
}
