package generate

import "github.com/katalvlaran/lvmaze/grid"

// binaryTree visits cells row-major and links each one to a random member
// of {north, east} ∩ existing neighbors. The north-east corner has no
// candidate and is skipped. The result always has an unbroken corridor
// along the northern row and the eastern column.
func (cv *carver) binaryTree() error {
	candidates := make([]grid.Coord, 0, 2)
	for cell := range cv.g.Cells() {
		candidates = candidates[:0]
		if n, ok := cell.North(); ok {
			candidates = append(candidates, n)
		}
		if e, ok := cell.East(); ok {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			continue
		}
		if err := cv.link(cell.Coord(), cv.pick(candidates)); err != nil {
			return err
		}
	}
	return nil
}
