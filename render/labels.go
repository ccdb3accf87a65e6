package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/grid"
)

// Blank draws an empty cell body.
func Blank(grid.Coord) string { return blankLabel }

// Distances labels each reached cell with its distance in hexadecimal.
// Unreached cells are blank.
func Distances(f *distance.Field) Label {
	return func(c grid.Coord) string {
		d, ok := f.Get(c)
		if !ok {
			return blankLabel
		}
		return hex3(d)
	}
}

// Path labels only the cells of path with their distance; the rest are
// blank.
func Path(f *distance.Field, path []grid.Coord) Label {
	on := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	dist := Distances(f)
	return func(c grid.Coord) string {
		if !on[c] {
			return blankLabel
		}
		return dist(c)
	}
}

// Heat paints each reached cell with a 24-bit ANSI background: the root is
// white and the farthest cell is dark green.
func Heat(f *distance.Field) Label {
	_, maxDist := f.Max()
	return func(c grid.Coord) string {
		d, ok := f.Get(c)
		if !ok {
			return blankLabel
		}
		intensity := 1.0
		if maxDist > 0 {
			intensity = float64(maxDist-d) / float64(maxDist)
		}
		dark := int(math.Floor(255 * intensity))
		bright := 128 + int(math.Floor(127*intensity))
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", dark, bright, dark, hex3(d))
	}
}

// Highlight wraps base so that cells in set are drawn in the given
// colorstring color (e.g. "green", "bold"). When enabled is false the
// markup is stripped and base is returned unchanged.
func Highlight(base Label, set []grid.Coord, color string, enabled bool) Label {
	on := make(map[grid.Coord]bool, len(set))
	for _, c := range set {
		on[c] = true
	}
	cz := &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !enabled,
		Reset:   true,
	}
	return func(c grid.Coord) string {
		body := base(c)
		if !on[c] {
			return body
		}
		return cz.Color("[" + color + "]" + body)
	}
}

// hex3 formats n in upper-case hexadecimal inside three columns.
func hex3(n int) string {
	s := strings.ToUpper(strconv.FormatInt(int64(n), 16))
	switch len(s) {
	case 1:
		return " " + s + " "
	case 2:
		return " " + s
	case 3:
		return s
	}
	return s[len(s)-3:]
}
