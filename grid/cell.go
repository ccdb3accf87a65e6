package grid

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a single maze node. Its topology is fixed when the Grid is built;
// only its link set changes afterwards, and only through Grid.Link/Unlink.
type Cell struct {
	coord     Coord
	neighbors [4]Coord
	present   [4]bool
	links     mapset.Set[Coord]
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.coord.Row }

// Column returns the cell's column index.
func (c *Cell) Column() int { return c.coord.Column }

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord { return c.coord }

// Neighbor returns the topological neighbor in direction d, if it exists.
func (c *Cell) Neighbor(d Direction) (Coord, bool) {
	return c.neighbors[d], c.present[d]
}

// North returns the neighbor at row-1, if any.
func (c *Cell) North() (Coord, bool) { return c.Neighbor(North) }

// South returns the neighbor at row+1, if any.
func (c *Cell) South() (Coord, bool) { return c.Neighbor(South) }

// West returns the neighbor at column-1, if any.
func (c *Cell) West() (Coord, bool) { return c.Neighbor(West) }

// East returns the neighbor at column+1, if any.
func (c *Cell) East() (Coord, bool) { return c.Neighbor(East) }

// Neighbors returns the existing topological neighbors in the fixed order
// north, south, west, east. The slice is freshly allocated.
func (c *Cell) Neighbors() []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if c.present[d] {
			out = append(out, c.neighbors[d])
		}
	}
	return out
}

// IsNeighbor reports whether o is one of the cell's topological neighbors.
func (c *Cell) IsNeighbor(o Coord) bool {
	for _, d := range Directions {
		if c.present[d] && c.neighbors[d] == o {
			return true
		}
	}
	return false
}

// Linked reports whether a passage leads from this cell to o.
func (c *Cell) Linked(o Coord) bool {
	return c.links.Has(o)
}

// Links returns the linked coordinates sorted row-major.
// Complexity: O(k log k), k ≤ 4.
func (c *Cell) Links() []Coord {
	out := make([]Coord, 0, c.links.Size())
	c.links.Each(func(o Coord) {
		out = append(out, o)
	})
	slices.SortFunc(out, Coord.Compare)
	return out
}

// LinkCount returns the number of passages leaving the cell.
func (c *Cell) LinkCount() int {
	return c.links.Size()
}

// Visited reports whether a generation algorithm has reached the cell,
// i.e. whether its link set is non-empty.
func (c *Cell) Visited() bool {
	return c.links.Size() > 0
}
