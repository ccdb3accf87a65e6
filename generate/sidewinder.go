package generate

import "github.com/katalvlaran/lvmaze/grid"

// sidewinder processes one row at a time, growing a run of cells joined
// eastward. A run closes when the eastern boundary forces it, or with
// probability 1/2 outside the northern row. On close one random run member
// is linked north (when it has a north neighbor) and a new run starts.
// The northern row therefore becomes a single east-west corridor.
func (cv *carver) sidewinder() error {
	for _, row := range cv.g.EachRow() {
		run := make([]*grid.Cell, 0, len(row))
		for _, cell := range row {
			run = append(run, cell)

			east, hasEast := cell.East()
			_, hasNorth := cell.North()
			closeRun := !hasEast || (hasNorth && cv.rng.Intn(2) == 0)

			if !closeRun {
				if err := cv.link(cell.Coord(), east); err != nil {
					return err
				}
				continue
			}
			member := run[cv.rng.Intn(len(run))]
			if north, ok := member.North(); ok {
				if err := cv.link(member.Coord(), north); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
