package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Surface is the read-only view of a maze consumed by the renderer.
// *grid.Grid satisfies it.
type Surface interface {
	Rows() int
	Columns() int
	Linked(a, b grid.Coord) bool
}

// Label returns the three-column body drawn inside a cell.
type Label func(c grid.Coord) string

const (
	corner     = "+"
	wallH      = "---"
	openH      = "   "
	wallV      = "|"
	openV      = " "
	blankLabel = "   "
)

// ASCII writes the maze to w, one text row for cell bodies and east walls
// followed by one for south walls, per grid row. A nil label draws blanks.
func ASCII(w io.Writer, s Surface, label Label) error {
	_, err := io.WriteString(w, String(s, label))
	return err
}

// String renders the maze into a string. See ASCII.
func String(s Surface, label Label) string {
	if label == nil {
		label = Blank
	}
	var b strings.Builder
	b.WriteString(corner)
	b.WriteString(strings.Repeat(wallH+corner, s.Columns()))
	b.WriteByte('\n')

	for r := 0; r < s.Rows(); r++ {
		var top, bottom strings.Builder
		top.WriteString(wallV)
		bottom.WriteString(corner)
		for c := 0; c < s.Columns(); c++ {
			here := grid.Coord{Row: r, Column: c}
			top.WriteString(label(here))
			if s.Linked(here, here.Step(grid.East)) {
				top.WriteString(openV)
			} else {
				top.WriteString(wallV)
			}
			if s.Linked(here, here.Step(grid.South)) {
				bottom.WriteString(openH)
			} else {
				bottom.WriteString(wallH)
			}
			bottom.WriteString(corner)
		}
		b.WriteString(top.String())
		b.WriteByte('\n')
		b.WriteString(bottom.String())
		b.WriteByte('\n')
	}
	return b.String()
}
