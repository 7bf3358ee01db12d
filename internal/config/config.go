// Package config provides configuration management for snapdir using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/snapdir/internal/errors"
	"github.com/thoreinstein/snapdir/internal/paths"
)

// Source pairs a source directory with the alias used as its path
// prefix inside every snapshot.
type Source struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Alias string `mapstructure:"alias" yaml:"alias"`
}

// Log holds the log sink configuration.
type Log struct {
	// File is the log file path. Truncated at the start of every run.
	File string `mapstructure:"file" yaml:"file"`
	// Level is one of ERROR, INFO, DEBUG.
	Level string `mapstructure:"level" yaml:"level"`
}

// Config represents the top-level configuration structure.
type Config struct {
	Sources      []Source `mapstructure:"sources" yaml:"sources"`
	Destinations []string `mapstructure:"destinations" yaml:"destinations"`
	Exclude      []string `mapstructure:"exclude" yaml:"exclude"`
	Notes        string   `mapstructure:"notes" yaml:"notes"`
	Log          Log      `mapstructure:"log" yaml:"log"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("SNAPDIR")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("log.level", "INFO")
	viper.SetDefault("log.file", paths.DefaultLogFile())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns default values if no file is found during an implicit search.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load falls back to defaults
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
