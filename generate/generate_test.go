package generate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
)

// zeroRand always selects the first candidate.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// linkSet captures the full passage set of a grid for comparison.
func linkSet(g *grid.Grid) map[grid.Coord][]grid.Coord {
	out := make(map[grid.Coord][]grid.Coord, g.Size())
	for c := range g.Cells() {
		out[c.Coord()] = c.Links()
	}
	return out
}

func mustGrid(t testing.TB, rows, columns int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, columns)
	require.NoError(t, err)
	return g
}

// TestApply_PerfectMaze checks the spanning-tree invariants for every
// algorithm over a spread of shapes.
func TestApply_PerfectMaze(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 3}, {7, 9}, {12, 12}}
	for _, alg := range generate.Algorithms() {
		for _, shape := range shapes {
			name := fmt.Sprintf("%s/%dx%d", alg, shape[0], shape[1])
			t.Run(name, func(t *testing.T) {
				g := mustGrid(t, shape[0], shape[1])
				require.NoError(t, generate.Apply(g, alg, generate.WithSeed(42)))

				n := shape[0] * shape[1]
				assert.Equal(t, n-1, g.LinkCount())
				assert.NoError(t, g.CheckPerfect())
				for c := range g.Cells() {
					if n > 1 {
						assert.True(t, c.Visited(), "cell %s left unvisited", c.Coord())
					}
					for _, o := range c.Links() {
						assert.True(t, g.Linked(o, c.Coord()), "asymmetric link %s-%s", c.Coord(), o)
					}
				}
			})
		}
	}
}

// TestApply_Deterministic verifies that equal seeds carve equal mazes.
func TestApply_Deterministic(t *testing.T) {
	for _, alg := range generate.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			a := mustGrid(t, 8, 11)
			b := mustGrid(t, 8, 11)
			require.NoError(t, generate.Apply(a, alg, generate.WithSeed(2024)))
			require.NoError(t, generate.Apply(b, alg, generate.WithSeed(2024)))
			assert.Equal(t, linkSet(a), linkSet(b))

			// default options are deterministic as well
			c := mustGrid(t, 8, 11)
			d := mustGrid(t, 8, 11)
			require.NoError(t, generate.Apply(c, alg))
			require.NoError(t, generate.Apply(d, alg, generate.WithRand(generate.NewRand(generate.DefaultSeed))))
			assert.Equal(t, linkSet(c), linkSet(d))
		})
	}
}

// TestApply_SeedsDiffer guards against an algorithm ignoring its source.
func TestApply_SeedsDiffer(t *testing.T) {
	for _, alg := range generate.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			base := mustGrid(t, 10, 10)
			require.NoError(t, generate.Apply(base, alg, generate.WithSeed(1)))
			differs := false
			for seed := int64(2); seed < 6 && !differs; seed++ {
				g := mustGrid(t, 10, 10)
				require.NoError(t, generate.Apply(g, alg, generate.WithSeed(seed)))
				differs = !assert.ObjectsAreEqual(linkSet(base), linkSet(g))
			}
			assert.True(t, differs, "seeds 1..5 all carved the same maze")
		})
	}
}

// TestBinaryTree_FirstCandidate is the 3×3 scenario with a source that
// always takes the first candidate (north when present).
func TestBinaryTree_FirstCandidate(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, generate.Apply(g, generate.BinaryTree, generate.WithRand(zeroRand{})))
	assert.Equal(t, 8, g.LinkCount())
	require.NoError(t, g.CheckPerfect())

	for c := range g.Cells() {
		north, hasNorth := c.North()
		east, hasEast := c.East()
		switch {
		case !hasNorth && hasEast: // top row
			assert.True(t, c.Linked(east), "top-row cell %s must link east", c.Coord())
		case hasNorth:
			assert.True(t, c.Linked(north), "cell %s must link north", c.Coord())
			if hasEast {
				assert.False(t, c.Linked(east), "cell %s must not link east", c.Coord())
			}
		}
	}
}

// TestBinaryTree_Corridor checks the structural bias for any seed.
func TestBinaryTree_Corridor(t *testing.T) {
	g := mustGrid(t, 6, 7)
	require.NoError(t, generate.Apply(g, generate.BinaryTree, generate.WithSeed(99)))
	for col := 0; col+1 < 7; col++ {
		assert.True(t, g.Linked(grid.Coord{Row: 0, Column: col}, grid.Coord{Row: 0, Column: col + 1}))
	}
	for row := 1; row < 6; row++ {
		assert.True(t, g.Linked(grid.Coord{Row: row, Column: 6}, grid.Coord{Row: row - 1, Column: 6}))
	}
}

// TestSidewinder_NorthernCorridor checks that the top row is one run.
func TestSidewinder_NorthernCorridor(t *testing.T) {
	g := mustGrid(t, 5, 8)
	require.NoError(t, generate.Apply(g, generate.Sidewinder, generate.WithSeed(7)))
	for col := 0; col+1 < 8; col++ {
		assert.True(t, g.Linked(grid.Coord{Row: 0, Column: col}, grid.Coord{Row: 0, Column: col + 1}))
	}
	assert.NoError(t, g.CheckPerfect())
}

// TestSidewinder_AlwaysClose: with every coin landing on "close", every
// cell below the top row links straight north.
func TestSidewinder_AlwaysClose(t *testing.T) {
	g := mustGrid(t, 4, 4)
	require.NoError(t, generate.Apply(g, generate.Sidewinder, generate.WithRand(zeroRand{})))
	require.NoError(t, g.CheckPerfect())
	for c := range g.Cells() {
		if north, ok := c.North(); ok {
			assert.True(t, c.Linked(north), "cell %s must link north", c.Coord())
		}
	}
}

// TestWilsons_SingleRow: the only spanning tree of a path is the path.
func TestWilsons_SingleRow(t *testing.T) {
	sources := map[string]grid.Rand{
		"first":  zeroRand{},
		"seed1":  generate.NewRand(1),
		"seed77": generate.NewRand(77),
	}
	for name, r := range sources {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 1, 5)
			require.NoError(t, generate.Apply(g, generate.Wilsons, generate.WithRand(r)))
			for col := 0; col+1 < 5; col++ {
				assert.True(t, g.Linked(grid.Coord{Row: 0, Column: col}, grid.Coord{Row: 0, Column: col + 1}))
			}
			assert.Equal(t, 4, g.LinkCount())
		})
	}
}

// TestApply_OnLink verifies the hook sees every passage exactly once.
func TestApply_OnLink(t *testing.T) {
	for _, alg := range generate.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustGrid(t, 6, 6)
			var seen [][2]grid.Coord
			err := generate.Apply(g, alg, generate.WithSeed(5), generate.WithOnLink(func(a, b grid.Coord) {
				seen = append(seen, [2]grid.Coord{a, b})
			}))
			require.NoError(t, err)
			assert.Len(t, seen, 35)
			for _, p := range seen {
				assert.True(t, g.Linked(p[0], p[1]))
			}
		})
	}
}

// TestApply_Errors covers nil grid, unknown algorithm and re-application.
func TestApply_Errors(t *testing.T) {
	assert.ErrorIs(t, generate.Apply(nil, generate.Wilsons), generate.ErrGridNil)

	g := mustGrid(t, 3, 3)
	assert.ErrorIs(t, generate.Apply(g, generate.Algorithm(42)), generate.ErrUnknownAlgorithm)
	assert.ErrorIs(t, generate.Apply(g, generate.Algorithm(-1)), generate.ErrUnknownAlgorithm)
	assert.Equal(t, 0, g.LinkCount(), "rejected call must not mutate the grid")

	require.NoError(t, generate.Apply(g, generate.HuntAndKill))
	assert.ErrorIs(t, generate.Apply(g, generate.HuntAndKill), generate.ErrAlreadyCarved)
	assert.Equal(t, 8, g.LinkCount())

	assert.Panics(t, func() { generate.WithRand(nil) })
}

// TestParseAlgorithm round-trips names and accepts loose spellings.
func TestParseAlgorithm(t *testing.T) {
	for _, alg := range generate.Algorithms() {
		got, err := generate.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	loose := map[string]generate.Algorithm{
		"Hunt And Kill":         generate.HuntAndKill,
		"recursive_backtracker": generate.RecursiveBacktracker,
		"Wilson's":              generate.Wilsons,
		"ALDOUSBRODER":          generate.AldousBroder,
	}
	for in, want := range loose {
		got, err := generate.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := generate.ParseAlgorithm("kruskal")
	assert.ErrorIs(t, err, generate.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", generate.Algorithm(9).String())
}
