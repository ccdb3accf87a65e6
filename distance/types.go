package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrRootOutOfBounds is returned when the root lies outside the grid.
	ErrRootOutOfBounds = errors.New("distance: root out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Option configures Compute via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Compute runs.
type Option func(*Options)

// Options holds the parameters and hooks of one Compute call.
type Options struct {
	// MaxDepth, if > 0, stops expansion past this distance.
	MaxDepth int

	// OnVisit is called once per reached cell, layer by layer.
	OnVisit func(c grid.Coord, depth int)

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(grid.Coord, int) {},
	}
}

// WithMaxDepth limits the search to cells at most d steps from the root.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook called for every reached cell.
func WithOnVisit(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
