package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for the report command
type DefaultsConfig struct {
	// Input file used when --input is not given
	Input string `mapstructure:"input"`
	// Output file written in addition to stdout
	Output string `mapstructure:"output"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "table",
		Quiet:   false,
		Verbose: false,
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.moncov.yaml or ./.moncov.yml
// 2. ~/.moncov.yaml or ~/.moncov.yml
// 3. $XDG_CONFIG_HOME/moncov/config.yaml (or ~/.config/moncov/config.yaml)
// 4. /etc/moncov/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".moncov.yaml", ".moncov.yml", "moncov.yaml", "moncov.yml"}

	type searchDir struct {
		path      string
		dedicated bool // config.yaml is only looked up in moncov's own directories
	}

	var searchPaths []searchDir
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, searchDir{path: cwd})
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, searchDir{path: home})
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		searchPaths = append(searchPaths, searchDir{path: filepath.Join(configDir, "moncov"), dedicated: true})
	}
	searchPaths = append(searchPaths, searchDir{path: "/etc/moncov", dedicated: true})

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir.path, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		if !dir.dedicated {
			continue
		}
		path := filepath.Join(dir.path, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONCOV_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("MONCOV_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("MONCOV_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("MONCOV_INPUT"); v != "" {
		cfg.Defaults.Input = v
	}
	if v := os.Getenv("MONCOV_OUTPUT"); v != "" {
		cfg.Defaults.Output = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
