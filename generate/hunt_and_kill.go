package generate

import "github.com/katalvlaran/lvmaze/grid"

// huntAndKill alternates two phases. Kill: from the current cell, link a
// random unvisited neighbor and step into it. Hunt: when the walk dead-ends,
// scan the grid row-major for the first unvisited cell that touches the
// visited region, link it to a random visited neighbor and resume there.
// Stops when a hunt finds nothing.
func (cv *carver) huntAndKill() error {
	current := cv.g.RandomCell(cv.rng)

	for current != nil {
		if fresh := cv.neighborsVisited(current, false); len(fresh) > 0 {
			next := cv.pick(fresh)
			if err := cv.link(current.Coord(), next); err != nil {
				return err
			}
			current = cv.cell(next)
			continue
		}

		var err error
		if current, err = cv.hunt(); err != nil {
			return err
		}
	}
	return nil
}

// hunt returns the newly attached cell, or nil when every cell is visited.
func (cv *carver) hunt() (*grid.Cell, error) {
	for cell := range cv.g.Cells() {
		if cell.Visited() {
			continue
		}
		visited := cv.neighborsVisited(cell, true)
		if len(visited) == 0 {
			continue
		}
		if err := cv.link(cell.Coord(), cv.pick(visited)); err != nil {
			return nil, err
		}
		return cell, nil
	}
	return nil, nil
}
