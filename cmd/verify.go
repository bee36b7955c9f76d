package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fanova-csv/internal/scenario"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <scenario-dir>",
	Short: "Cross-check the files of a scenario directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := scenario.Check(args[0])
		if err != nil {
			return fmt.Errorf("verify %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d runs, %d parameters\n", args[0], sum.Rows, len(sum.Params))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
