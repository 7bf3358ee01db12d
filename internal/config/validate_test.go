package config

import (
	"testing"

	"github.com/thoreinstein/snapdir/internal/errors"
)

func validConfig() *Config {
	return &Config{
		Sources: []Source{
			{Path: "/home/user/docs", Alias: "docs"},
			{Path: "/var/media", Alias: "media"},
		},
		Destinations: []string{"/mnt/backup"},
		Exclude:      []string{".tmp"},
		Log:          Log{File: "/tmp/snapdir.log", Level: "INFO"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"ERROR", false},
		{"INFO", false},
		{"DEBUG", false},
		{"WARN", true},
		{"info", true},
		{"TRACE", true},
		{"", true},
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.Log.Level = tt.level
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate() with level %q: err = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, errors.ErrInvalidLogLevel) {
			t.Errorf("level %q: expected ErrInvalidLogLevel, got %v", tt.level, err)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no sources", func(c *Config) { c.Sources = nil }},
		{"no destinations", func(c *Config) { c.Destinations = nil }},
		{"empty source path", func(c *Config) { c.Sources[0].Path = "" }},
		{"empty alias", func(c *Config) { c.Sources[0].Alias = "" }},
		{"alias with separator", func(c *Config) { c.Sources[0].Alias = "a/b" }},
		{"duplicate alias", func(c *Config) { c.Sources[1].Alias = c.Sources[0].Alias }},
		{"duplicate source path", func(c *Config) { c.Sources[1].Path = c.Sources[0].Path }},
		{"nested source path", func(c *Config) { c.Sources[1].Path = "/home/user/docs/sub" }},
		{"empty destination", func(c *Config) { c.Destinations = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_SubstringSiblingsAllowed(t *testing.T) {
	// /data/a and /data/ab overlap textually but not as path segments.
	cfg := validConfig()
	cfg.Sources = []Source{
		{Path: "/data/a", Alias: "a"},
		{Path: "/data/ab", Alias: "ab"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sibling sources rejected: %v", err)
	}
}
