// Package config loads bridge-wrangler configuration from YAML, with
// flag and environment overrides layered on top of the defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked for in the working directory
// when neither the --config flag nor the environment names one.
const DefaultFile = ".bridge-wrangler.yaml"

// EnvConfigPath names an alternative config file.
const EnvConfigPath = "BRIDGE_WRANGLER_CONFIG"

// Config holds all bridge-wrangler configuration.
type Config struct {
	Rotate  RotateConfig  `yaml:"rotate"`
	Analyze AnalyzeConfig `yaml:"analyze"`
	Logging LoggingConfig `yaml:"logging"`
}

// RotateConfig carries defaults for the rotate command.
type RotateConfig struct {
	// Patterns applied when the command line gives none.
	Patterns []string `yaml:"patterns"`

	// Basis selects the reference seat: standard, student, declarer,
	// dealer, deal, or a fixed seat name.
	Basis string `yaml:"basis"`

	// StandardVul rewrites vulnerability from the 16-board cycle
	// instead of swapping partnerships.
	StandardVul bool `yaml:"standard_vul"`
}

// AnalyzeConfig carries defaults for the analyze command.
type AnalyzeConfig struct {
	Verbose bool `yaml:"verbose"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Rotate: RotateConfig{
			Patterns: []string{"NESW"},
			Basis:    "standard",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file over the defaults. A
// missing file is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the config file: the explicit flag value first,
// then the environment, then the default name in the working
// directory.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultFile
}
