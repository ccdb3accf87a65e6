package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/generate"
)

const (
	headerAlgorithm = "ALGORITHM"
	headerDeadEnds  = "AVG DEAD ENDS"
	headerRatio     = "DEAD END %"
	headerLongest   = "AVG LONGEST PATH"
)

// algorithmStats aggregates trial results for one algorithm.
type algorithmStats struct {
	Algorithm    generate.Algorithm
	Trials       int
	DeadEnds     int
	LongestSteps int
}

// AvgDeadEnds returns the mean dead-end count per maze.
func (s algorithmStats) AvgDeadEnds() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.DeadEnds) / float64(s.Trials)
}

// AvgLongest returns the mean longest-path length in steps.
func (s algorithmStats) AvgLongest() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.LongestSteps) / float64(s.Trials)
}

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "compare algorithms by dead ends and longest path",
	Example: `lvmaze stats --rows 20 --columns 20 --trials 50`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, columns := viper.GetInt("rows"), viper.GetInt("columns")
		trials := viper.GetInt("trials")
		if trials <= 0 {
			return fmt.Errorf("--trials must be positive, got %d", trials)
		}
		algs := generate.Algorithms()
		bar := progressbar.NewOptions(len(algs)*trials,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("carving mazes"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		results, err := collectStats(rows, columns, trials, viper.GetInt64("seed"), func() {
			if err := bar.Add(1); err != nil {
				logrus.Errorf("failed to increment progress bar, err: %s", err)
			}
		})
		if err != nil {
			return err
		}
		if err := bar.Finish(); err != nil {
			logrus.Debugf("failed to finish progress bar: %v", err)
		}
		writeStats(cmd.OutOrStdout(), rows*columns, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntP("rows", "r", 20, "number of grid rows")
	statsCmd.Flags().IntP("columns", "c", 20, "number of grid columns")
	statsCmd.Flags().IntP("trials", "t", 10, "mazes carved per algorithm")
	statsCmd.Flags().Int64P("seed", "s", generate.DefaultSeed, "base seed, each trial derives its own stream")
}

// collectStats carves trials mazes per algorithm. Trial i of algorithm a
// uses the seed stream a*trials+i derived from seed, so results are
// reproducible. tick, if non-nil, is called after each maze.
func collectStats(rows, columns, trials int, seed int64, tick func()) ([]algorithmStats, error) {
	algs := generate.Algorithms()
	out := make([]algorithmStats, 0, len(algs))
	for ai, alg := range algs {
		st := algorithmStats{Algorithm: alg}
		for i := 0; i < trials; i++ {
			trialSeed := generate.DeriveSeed(seed, uint64(ai*trials+i))
			g, err := carve(rows, columns, alg.String(), trialSeed)
			if err != nil {
				return nil, err
			}
			path, err := distance.LongestPath(g)
			if err != nil {
				return nil, err
			}
			st.Trials++
			st.DeadEnds += len(g.DeadEnds())
			st.LongestSteps += len(path) - 1
			if tick != nil {
				tick()
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func writeStats(w io.Writer, cells int, results []algorithmStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{headerAlgorithm, headerDeadEnds, headerRatio, headerLongest})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, st := range results {
		avg := st.AvgDeadEnds()
		table.Append([]string{
			st.Algorithm.String(),
			fmt.Sprintf("%.1f", avg),
			fmt.Sprintf("%.1f%%", 100*avg/float64(cells)),
			fmt.Sprintf("%.1f", st.AvgLongest()),
		})
	}
	table.Render()
}
