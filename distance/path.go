package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// PathTo reconstructs the shortest path from the root to goal, inclusive
// at both ends. From goal it repeatedly steps to a linked neighbor whose
// distance is exactly one less until the root is reached.
//
// Returns false if goal was not reached, or if some step finds no such
// neighbor (the link graph changed or was never a valid maze).
func (f *Field) PathTo(goal grid.Coord) ([]grid.Coord, bool) {
	d, ok := f.dist[goal]
	if !ok {
		return nil, false
	}
	path := make([]grid.Coord, d+1)
	path[d] = goal
	for cur := goal; d > 0; {
		prev, ok := f.stepBack(cur, d)
		if !ok {
			return nil, false
		}
		d--
		path[d] = prev
		cur = prev
	}
	return path, true
}

// stepBack finds a linked neighbor of c at distance d-1.
func (f *Field) stepBack(c grid.Coord, d int) (grid.Coord, bool) {
	cell, ok := f.g.At(c)
	if !ok {
		return grid.Coord{}, false
	}
	for _, dir := range grid.Directions {
		n, ok := cell.Neighbor(dir)
		if !ok || !cell.Linked(n) {
			continue
		}
		if nd, ok := f.dist[n]; ok && nd == d-1 {
			return n, true
		}
	}
	return grid.Coord{}, false
}

// LongestPath returns a longest path of a perfect maze: the farthest cell
// from (0,0) is one end, and the farthest cell from that end is the other.
func LongestPath(g *grid.Grid) ([]grid.Coord, error) {
	first, err := Compute(g, grid.Coord{})
	if err != nil {
		return nil, err
	}
	start, _ := first.Max()
	second, err := Compute(g, start)
	if err != nil {
		return nil, err
	}
	goal, _ := second.Max()
	path, ok := second.PathTo(goal)
	if !ok {
		return nil, fmt.Errorf("distance: broken link graph between %s and %s", start, goal)
	}
	return path, nil
}
