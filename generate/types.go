package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("generate: grid is nil")

	// ErrUnknownAlgorithm is returned for Algorithm values outside the enum
	// and for unparsable algorithm names.
	ErrUnknownAlgorithm = errors.New("generate: unknown algorithm")

	// ErrAlreadyCarved is returned when the grid already holds links;
	// algorithms are single-pass and expect a fresh grid.
	ErrAlreadyCarved = errors.New("generate: grid already has links")
)

// Algorithm selects one of the generation strategies.
type Algorithm int

const (
	// BinaryTree links every cell to its north or east neighbor.
	BinaryTree Algorithm = iota
	// Sidewinder carves eastward runs closed by one northward exit.
	Sidewinder
	// AldousBroder performs an unbiased random walk.
	AldousBroder
	// Wilsons performs loop-erased random walks.
	Wilsons
	// HuntAndKill walks randomly and hunts for a new start on dead ends.
	HuntAndKill
	// RecursiveBacktracker is a randomized depth-first search.
	RecursiveBacktracker
)

var algorithmNames = [...]string{
	BinaryTree:           "binary-tree",
	Sidewinder:           "sidewinder",
	AldousBroder:         "aldous-broder",
	Wilsons:              "wilsons",
	HuntAndKill:          "hunt-and-kill",
	RecursiveBacktracker: "recursive-backtracker",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// String returns the kebab-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves a name such as "hunt-and-kill", "Hunt And Kill"
// or "hunt_and_kill". Matching ignores case and separators.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalize(name)
	for i, n := range algorithmNames {
		if normalize(n) == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "", " ", "", "'", "").Replace(s)
}

// Option configures Apply via functional arguments.
type Option func(*Options)

// Options holds the random source and hooks used while carving.
type Options struct {
	// Rand drives every random choice.
	Rand grid.Rand

	// OnLink is called after each new passage a↔b is carved.
	OnLink func(a, b grid.Coord)
}

// DefaultOptions returns Options with:
//   - a fresh stream seeded with DefaultSeed
//   - a no-op OnLink hook
func DefaultOptions() Options {
	return Options{
		Rand:   NewRand(DefaultSeed),
		OnLink: func(grid.Coord, grid.Coord) {},
	}
}

// WithRand supplies the random source. Panics on nil: a missing source
// is a programming error, not a runtime condition.
func WithRand(r grid.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed installs a deterministic stream for the given seed
// (seed 0 maps to DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = NewRand(seed)
	}
}

// WithOnLink registers a hook invoked after every carved passage.
func WithOnLink(fn func(a, b grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}
