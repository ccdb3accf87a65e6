package generate

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// carver encapsulates the state shared by every algorithm during one Apply.
type carver struct {
	g      *grid.Grid
	rng    grid.Rand
	onLink func(a, b grid.Coord)
}

// Apply carves a perfect maze into g using alg, applying any number of
// functional Options. The grid is mutated in place.
// Returns ErrGridNil, ErrUnknownAlgorithm or ErrAlreadyCarved for invalid
// input; link failures (which indicate a bug) are wrapped with the
// algorithm name.
func Apply(g *grid.Grid, alg Algorithm, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.LinkCount() > 0 {
		return fmt.Errorf("%w: %d links present", ErrAlreadyCarved, g.LinkCount())
	}

	cv := &carver{g: g, rng: o.Rand, onLink: o.OnLink}
	var err error
	switch alg {
	case BinaryTree:
		err = cv.binaryTree()
	case Sidewinder:
		err = cv.sidewinder()
	case AldousBroder:
		err = cv.aldousBroder()
	case Wilsons:
		err = cv.wilsons()
	case HuntAndKill:
		err = cv.huntAndKill()
	case RecursiveBacktracker:
		err = cv.recursiveBacktracker()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return fmt.Errorf("generate: %s: %w", alg, err)
	}
	return nil
}

// link carves a↔b and fires the OnLink hook.
func (cv *carver) link(a, b grid.Coord) error {
	if err := cv.g.Link(a, b); err != nil {
		return err
	}
	cv.onLink(a, b)
	return nil
}

// pick returns a uniformly random element of a non-empty slice.
func (cv *carver) pick(cs []grid.Coord) grid.Coord {
	return cs[cv.rng.Intn(len(cs))]
}

// cell resolves a coordinate known to be in bounds.
func (cv *carver) cell(c grid.Coord) *grid.Cell {
	cell, _ := cv.g.At(c)
	return cell
}

// neighborsVisited returns c's topological neighbors whose visited state
// equals want, in the fixed neighbor order.
func (cv *carver) neighborsVisited(c *grid.Cell, want bool) []grid.Coord {
	var out []grid.Coord
	for _, n := range c.Neighbors() {
		if cv.cell(n).Visited() == want {
			out = append(out, n)
		}
	}
	return out
}
