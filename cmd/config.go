package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/fanova-csv/internal/config"
	"github.com/KaramelBytes/fanova-csv/internal/dataset"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set fanova-csv configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "scenario_base_dir: %s\n", cfg.ScenarioBaseDir)
		fmt.Fprintf(out, "header: %t\n", cfg.Header)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		fmt.Fprintf(out, "inspect_format: %s\n", cfg.InspectFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "scenario_base_dir":
			cfg.ScenarioBaseDir = val
		case "header":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for header: %v", val)
			}
			cfg.Header = b
		case "delimiter":
			if _, err := dataset.ParseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "inspect_format":
			switch strings.ToLower(val) {
			case "table", "yaml", "json":
				cfg.InspectFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid inspect_format: %s (use table, yaml or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
