package generate

import "github.com/katalvlaran/lvmaze/grid"

// wilsons seeds the maze with one random cell, then repeatedly performs a
// loop-erased random walk from a random unvisited cell until the walk
// touches the maze, and carves the erased path into it.
// Produces a uniform spanning tree.
func (cv *carver) wilsons() error {
	unvisited := newCoordSet(cv.g.Size())
	for cell := range cv.g.Cells() {
		unvisited.add(cell.Coord())
	}
	unvisited.removeAt(cv.rng.Intn(unvisited.len()))

	for unvisited.len() > 0 {
		start := unvisited.at(cv.rng.Intn(unvisited.len()))
		path := []grid.Coord{start}
		position := map[grid.Coord]int{start: 0}

		for cur := start; unvisited.has(cur); {
			cur = cv.pick(cv.cell(cur).Neighbors())
			if i, seen := position[cur]; seen {
				// loop erasure: cut back to the first occurrence
				for _, dropped := range path[i+1:] {
					delete(position, dropped)
				}
				path = path[:i+1]
				continue
			}
			position[cur] = len(path)
			path = append(path, cur)
		}

		for i := 0; i+1 < len(path); i++ {
			if err := cv.link(path[i], path[i+1]); err != nil {
				return err
			}
			unvisited.remove(path[i])
		}
	}
	return nil
}

// coordSet is an insertion-indexed set supporting O(1) membership,
// O(1) removal and uniform random access by position.
type coordSet struct {
	items []grid.Coord
	index map[grid.Coord]int
}

func newCoordSet(capacity int) *coordSet {
	return &coordSet{
		items: make([]grid.Coord, 0, capacity),
		index: make(map[grid.Coord]int, capacity),
	}
}

func (s *coordSet) len() int { return len(s.items) }

func (s *coordSet) at(i int) grid.Coord { return s.items[i] }

func (s *coordSet) has(c grid.Coord) bool {
	_, ok := s.index[c]
	return ok
}

func (s *coordSet) add(c grid.Coord) {
	if s.has(c) {
		return
	}
	s.index[c] = len(s.items)
	s.items = append(s.items, c)
}

func (s *coordSet) remove(c grid.Coord) {
	if i, ok := s.index[c]; ok {
		s.removeAt(i)
	}
}

// removeAt swaps the last element into position i.
func (s *coordSet) removeAt(i int) {
	last := len(s.items) - 1
	delete(s.index, s.items[i])
	if i != last {
		s.items[i] = s.items[last]
		s.index[s.items[i]] = i
	}
	s.items = s.items[:last]
}
