package grid

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or columns below one.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNotAdjacent indicates a link request between non-neighboring cells.
	ErrNotAdjacent = errors.New("grid: cells are not topological neighbors")
	// ErrAsymmetricLink indicates a link recorded on one endpoint only.
	ErrAsymmetricLink = errors.New("grid: link is not symmetric")
	// ErrNotSpanning indicates some cells are unreachable over links.
	ErrNotSpanning = errors.New("grid: links do not span every cell")
	// ErrCycle indicates the link graph contains at least one loop.
	ErrCycle = errors.New("grid: links contain a cycle")
)

// Rand is the source of uniform randomness consumed by grid helpers and
// generation algorithms. *math/rand.Rand satisfies it.
//
// Intn must return a value in [0, n) for n > 0.
type Rand interface {
	Intn(n int) int
}

// Coord identifies a cell by its row and column.
type Coord struct {
	Row, Column int
}

// String renders the coordinate as "row,column".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Column)
}

// Compare orders coordinates row-major: by Row, then by Column.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Column, o.Column)
}

// Direction names one of the four topological neighbor slots.
type Direction int

const (
	// North is the neighbor at row-1.
	North Direction = iota
	// South is the neighbor at row+1.
	South
	// West is the neighbor at column-1.
	West
	// East is the neighbor at column+1.
	East
)

// Directions lists all slots in the canonical neighbor order.
var Directions = [4]Direction{North, South, West, East}

// offsets maps each Direction to its (row, column) delta.
var offsets = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	West:  {0, -1},
	East:  {0, 1},
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step returns the coordinate one cell away from c in direction d,
// without any bounds check.
func (c Coord) Step(d Direction) Coord {
	o := offsets[d]
	return Coord{Row: c.Row + o[0], Column: c.Column + o[1]}
}
