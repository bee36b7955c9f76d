package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/fanova-csv/internal/dataset"
	"github.com/KaramelBytes/fanova-csv/internal/scenario"
	"github.com/KaramelBytes/fanova-csv/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inspHeader    bool
	inspDelimiter string
	inspFormat    string
)

type inspectReport struct {
	File       string                  `json:"file" yaml:"file"`
	Rows       int                     `json:"rows" yaml:"rows"`
	Response   string                  `json:"response" yaml:"response"`
	Parameters []dataset.ParameterSpec `json:"parameters" yaml:"parameters"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.csv>",
	Short: "Show the parameter bounds and defaults derived from a CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := readOptions(cmd, inspHeader, inspDelimiter)
		if err != nil {
			return err
		}
		ds, err := dataset.ReadCSV(args[0], opt)
		if err != nil {
			return err
		}
		rep := inspectReport{File: args[0], Rows: ds.Rows(), Response: ds.ResponseName, Parameters: ds.Specs()}

		format := inspFormat
		if !cmd.Flags().Changed("format") && cfg != nil && cfg.InspectFormat != "" {
			format = cfg.InspectFormat
		}
		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "table", "":
			fmt.Fprintf(out, "%s: %d rows, %d parameters, response %q\n", rep.File, rep.Rows, len(rep.Parameters), rep.Response)
			w := 4
			for _, p := range rep.Parameters {
				if len(p.Name) > w {
					w = len(p.Name)
				}
			}
			fmt.Fprintf(out, "%-*s  %-12s  %-12s  %s\n", w, "NAME", "LOWER", "UPPER", "DEFAULT")
			for _, p := range rep.Parameters {
				fmt.Fprintf(out, "%-*s  %-12s  %-12s  %s\n", w, p.Name,
					scenario.FormatFloat(p.Lower), scenario.FormatFloat(p.Upper), scenario.FormatFloat(p.Default))
			}
		case "yaml":
			b, err := yaml.Marshal(rep)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			fmt.Fprint(out, string(b))
		case "json":
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		default:
			return fmt.Errorf("unsupported --format: %s (use table|yaml|json)", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspHeader, "header", false, "first line holds column names")
	inspectCmd.Flags().StringVar(&inspDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default by extension)")
	inspectCmd.Flags().StringVarP(&inspFormat, "format", "f", "table", "output format: table | yaml | json")
}
