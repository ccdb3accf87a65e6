package generate

import "github.com/katalvlaran/lvmaze/grid"

// recursiveBacktracker is a randomized depth-first search driven by an
// explicit stack: extend from the top cell into a random unvisited
// neighbor, or pop when it has none.
func (cv *carver) recursiveBacktracker() error {
	stack := []grid.Coord{cv.g.RandomCell(cv.rng).Coord()}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		fresh := cv.neighborsVisited(cv.cell(top), false)
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := cv.pick(fresh)
		if err := cv.link(top, next); err != nil {
			return err
		}
		stack = append(stack, next)
	}
	return nil
}
