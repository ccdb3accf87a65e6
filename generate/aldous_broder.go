package generate

// aldousBroder walks from a random cell to uniformly random topological
// neighbors, linking whenever the walk enters an unvisited cell, until
// every cell has been entered. The walk moves regardless of whether the
// neighbor was new. Produces a uniform spanning tree; cover time makes it
// slow on large grids.
func (cv *carver) aldousBroder() error {
	cell := cv.g.RandomCell(cv.rng)
	unvisited := cv.g.Size() - 1

	for unvisited > 0 {
		next := cv.cell(cv.pick(cell.Neighbors()))
		if !next.Visited() {
			if err := cv.link(cell.Coord(), next.Coord()); err != nil {
				return err
			}
			unvisited--
		}
		cell = next
	}
	return nil
}
