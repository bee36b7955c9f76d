package cmd

import (
	"fmt"
	"log"
	"os"

	cfgpkg "github.com/KaramelBytes/fanova-csv/internal/config"
	"github.com/KaramelBytes/fanova-csv/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "fanova-csv",
	Short: "fanova-csv: turn CSV data into a SMAC scenario for fANOVA",
	Long: `fanova-csv converts a CSV of parameter columns plus a trailing response column
into the scenario files (instances, param file, paramstrings, runs and results,
scenario manifest) that a fANOVA analysis reads.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.fanova-csv/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{ScenarioBaseDir: os.TempDir(), InspectFormat: "table"}
	}
	cfg = c
}

// debugLogger returns a stderr logger when --debug is set, nil otherwise.
func debugLogger() *log.Logger {
	if !debug {
		return nil
	}
	return log.New(os.Stderr, "debug: ", 0)
}

// readOptions resolves --header/--delimiter against the loaded config.
func readOptions(cmd *cobra.Command, header bool, delim string) (dataset.Options, error) {
	opt := dataset.Options{Header: header}
	if cfg != nil {
		if !cmd.Flags().Changed("header") {
			opt.Header = cfg.Header
		}
		if !cmd.Flags().Changed("delimiter") {
			delim = cfg.Delimiter
		}
	}
	d, err := dataset.ParseDelimiter(delim)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	return opt, nil
}
