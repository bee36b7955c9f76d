package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fanova-csv/internal/converter"
	"github.com/KaramelBytes/fanova-csv/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	convHeader    bool
	convDelimiter string
	convOutDir    string
	convVerify    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.csv>",
	Short: "Write the scenario files for a CSV dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ropt, err := readOptions(cmd, convHeader, convDelimiter)
		if err != nil {
			return err
		}
		opt := converter.Options{
			Header:    ropt.Header,
			Delimiter: ropt.Delimiter,
			OutDir:    convOutDir,
			Logger:    debugLogger(),
		}
		if cfg != nil {
			opt.BaseDir = cfg.ScenarioBaseDir
		}

		var eng converter.Engine
		if convVerify {
			eng = converter.EngineFunc(func(dir string, _ map[string]string) error {
				_, err := scenario.Check(dir)
				return err
			})
		}
		c, err := converter.New(args[0], opt, eng)
		if err != nil {
			return err
		}
		// The written directory is the command's output, so it outlives the run.
		dir := c.Keep()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote scenario for %d rows × %d parameters to %s\n", c.Dataset().Rows(), c.Dataset().Cols(), dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convHeader, "header", false, "first line holds column names")
	convertCmd.Flags().StringVar(&convDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default by extension)")
	convertCmd.Flags().StringVarP(&convOutDir, "out", "o", "", "write into this directory instead of a new one under scenario_base_dir")
	convertCmd.Flags().BoolVar(&convVerify, "verify", false, "re-read and cross-check the written files")
}
