package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/generate"
)

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Short:   "list the supported maze algorithms",
	Example: `lvmaze algorithms`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, alg := range generate.Algorithms() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), alg); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
