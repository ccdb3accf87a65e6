package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Field maps each cell reachable from Root to its distance in passages.
// It is immutable once computed and keeps a read-only reference to the
// grid for path reconstruction.
type Field struct {
	g    *grid.Grid
	root grid.Coord
	dist map[grid.Coord]int
}

// Compute runs breadth-first search from root over g's links.
// Returns ErrGridNil, ErrRootOutOfBounds or ErrOptionViolation for
// invalid input.
func Compute(g *grid.Grid, root grid.Coord, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(root) {
		return nil, fmt.Errorf("%w: %s", ErrRootOutOfBounds, root)
	}

	f := &Field{
		g:    g,
		root: root,
		dist: map[grid.Coord]int{root: 0},
	}

	frontier := []grid.Coord{root}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []grid.Coord
		for _, c := range frontier {
			o.OnVisit(c, depth)
			if o.MaxDepth > 0 && depth >= o.MaxDepth {
				continue
			}
			cell, _ := g.At(c)
			for _, d := range grid.Directions {
				n, ok := cell.Neighbor(d)
				if !ok || !cell.Linked(n) {
					continue
				}
				if _, seen := f.dist[n]; seen {
					continue
				}
				f.dist[n] = depth + 1
				next = append(next, n)
			}
		}
		frontier = next
	}
	return f, nil
}

// Root returns the coordinate the field was computed from.
func (f *Field) Root() grid.Coord { return f.root }

// Len returns the number of reached cells, root included.
func (f *Field) Len() int { return len(f.dist) }

// Get returns the distance of c from the root, or false if c was not
// reached.
func (f *Field) Get(c grid.Coord) (int, bool) {
	d, ok := f.dist[c]
	return d, ok
}

// Cells returns the reached coordinates in row-major order.
func (f *Field) Cells() []grid.Coord {
	out := make([]grid.Coord, 0, len(f.dist))
	for cell := range f.g.Cells() {
		if _, ok := f.dist[cell.Coord()]; ok {
			out = append(out, cell.Coord())
		}
	}
	return out
}

// Max returns the farthest reached cell and its distance. Among equally
// distant cells the one with the lowest row, then lowest column, wins.
func (f *Field) Max() (grid.Coord, int) {
	best, bestDist := f.root, 0
	for cell := range f.g.Cells() {
		if d, ok := f.dist[cell.Coord()]; ok && d > bestDist {
			best, bestDist = cell.Coord(), d
		}
	}
	return best, bestDist
}
