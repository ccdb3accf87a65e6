package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

// Values accepted by --show.
const (
	showNone      = "none"
	showDistances = "distances"
	showPath      = "path"
	showHeat      = "heat"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "carve a maze and print it",
	Example: `lvmaze generate --rows 8 --columns 12 --algorithm wilsons --seed 7
lvmaze generate -a sidewinder --show distances
lvmaze generate -a recursive-backtracker --show heat --color always
lvmaze generate --longest`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := colorEnabled(viper.GetString("color"), stdoutIsTerminal())
		if err != nil {
			return err
		}
		g, err := carve(
			viper.GetInt("rows"),
			viper.GetInt("columns"),
			viper.GetString("algorithm"),
			viper.GetInt64("seed"),
		)
		if err != nil {
			return err
		}
		label, err := buildLabel(g, viper.GetString("show"), viper.GetBool("longest"), color)
		if err != nil {
			return err
		}
		return render.ASCII(cmd.OutOrStdout(), g, label)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("rows", "r", 10, "number of grid rows")
	generateCmd.Flags().IntP("columns", "c", 10, "number of grid columns")
	generateCmd.Flags().StringP("algorithm", "a", generate.RecursiveBacktracker.String(), "maze algorithm, see 'lvmaze algorithms'")
	generateCmd.Flags().Int64P("seed", "s", generate.DefaultSeed, "random seed, equal seeds give equal mazes")
	generateCmd.Flags().String("show", showNone, "cell labels: none, distances, path or heat")
	generateCmd.Flags().Bool("longest", false, "highlight the longest path through the maze")
}

// carve builds a rows×columns grid, runs the named algorithm over it and
// verifies the result is a perfect maze.
func carve(rows, columns int, name string, seed int64) (*grid.Grid, error) {
	alg, err := generate.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(rows, columns)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("carving %dx%d grid with %s, seed %d", rows, columns, alg, seed)
	err = generate.Apply(g, alg,
		generate.WithSeed(seed),
		generate.WithOnLink(func(a, b grid.Coord) {
			logrus.Debugf("link %s <-> %s", a, b)
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := g.CheckPerfect(); err != nil {
		return nil, fmt.Errorf("%s produced an imperfect maze: %w", alg, err)
	}
	logrus.Debugf("carved %d passages, %d dead ends", g.LinkCount(), len(g.DeadEnds()))
	return g, nil
}

// buildLabel picks the cell labelling for --show and, when longest is set,
// paints the longest path on top of it.
func buildLabel(g *grid.Grid, show string, longest, color bool) (render.Label, error) {
	var label render.Label
	switch show {
	case showNone, "":
		label = render.Blank
	case showDistances, showHeat:
		f, err := distance.Compute(g, grid.Coord{})
		if err != nil {
			return nil, err
		}
		if show == showHeat {
			label = render.Heat(f)
		} else {
			label = render.Distances(f)
		}
	case showPath:
		path, f, err := longestWithField(g)
		if err != nil {
			return nil, err
		}
		label = render.Path(f, path)
	default:
		return nil, fmt.Errorf("invalid --show value %q: want %s, %s, %s or %s",
			show, showNone, showDistances, showPath, showHeat)
	}
	if !longest {
		return label, nil
	}
	path, err := distance.LongestPath(g)
	if err != nil {
		return nil, err
	}
	logrus.Infof("longest path: %d steps from %s to %s", len(path)-1, path[0], path[len(path)-1])
	return render.Highlight(label, path, "green", color), nil
}

// longestWithField returns the longest path together with the distance
// field rooted at its first cell, so labels count along the path.
func longestWithField(g *grid.Grid) ([]grid.Coord, *distance.Field, error) {
	path, err := distance.LongestPath(g)
	if err != nil {
		return nil, nil, err
	}
	f, err := distance.Compute(g, path[0])
	if err != nil {
		return nil, nil, err
	}
	return path, f, nil
}
