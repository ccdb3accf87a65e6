package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// envPrefix namespaces environment overrides, e.g. LVMAZE_ROWS=20.
const envPrefix = "LVMAZE"

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type rootOpts struct {
	debugModeOn bool
	color       string
}

var rootOpt rootOpts

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lvmaze",
	Short: "generate and inspect perfect mazes on rectangular grids",
	Long: `lvmaze carves perfect mazes with one of six classic algorithms,
measures distances across them and prints them as ASCII art.

Every flag can also be set through the environment with the LVMAZE_
prefix (LVMAZE_ROWS, LVMAZE_ALGORITHM, ...) or through a .env file in
the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		initLogger(viper.GetBool("debug"))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().StringVar(&rootOpt.color, "color", colorAuto, "colorize output: auto, always or never")
	rootCmd.DisableAutoGenTag = true
}

// initConfig wires environment variables into viper.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func initLogger(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// colorEnabled resolves a --color mode. Auto colors only when stdout is a
// terminal.
func colorEnabled(mode string, tty bool) (bool, error) {
	switch strings.ToLower(mode) {
	case colorAuto, "":
		return tty, nil
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	}
	return false, fmt.Errorf("invalid color mode %q: want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
