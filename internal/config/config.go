package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".fanova-csv"

// Global configuration structure.
type Global struct {
	// ScenarioBaseDir is where generated scenario directories are created.
	ScenarioBaseDir string `mapstructure:"scenario_base_dir" yaml:"scenario_base_dir"`
	// Header is the default for --header.
	Header bool `mapstructure:"header" yaml:"header"`
	// Delimiter is the default for --delimiter: "", ",", ";" or "tab".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// InspectFormat is the default output of the inspect command.
	InspectFormat string `mapstructure:"inspect_format" yaml:"inspect_format"`
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName, "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.fanova-csv/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("FANOVA")
	v.AutomaticEnv()

	v.SetDefault("scenario_base_dir", "")
	v.SetDefault("header", false)
	v.SetDefault("delimiter", "")
	v.SetDefault("inspect_format", "table")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(p))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// A missing file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ScenarioBaseDir == "" {
		c.ScenarioBaseDir = os.TempDir()
	}
	return &c, nil
}
