package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func loadFrom(t *testing.T, content string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	Init()
	return Load(path)
}

func TestLoad(t *testing.T) {
	cfg, err := loadFrom(t, `
sources:
  - path: /home/user/docs
    alias: docs
  - path: /var/media
    alias: media
destinations:
  - /mnt/backup1
  - /mnt/backup2
exclude:
  - .sdf
  - .tmp
notes: weekly backup
log:
  file: /tmp/backup.log
  level: ERROR
`)
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Sources) != 2 {
		t.Fatalf("Sources = %v", cfg.Sources)
	}
	if cfg.Sources[0].Path != "/home/user/docs" || cfg.Sources[0].Alias != "docs" {
		t.Errorf("Sources[0] = %+v", cfg.Sources[0])
	}
	if len(cfg.Destinations) != 2 {
		t.Errorf("Destinations = %v", cfg.Destinations)
	}
	if len(cfg.Exclude) != 2 {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.Notes != "weekly backup" {
		t.Errorf("Notes = %q", cfg.Notes)
	}
	if cfg.Log.File != "/tmp/backup.log" || cfg.Log.Level != "ERROR" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(t, `
sources:
  - path: /a
    alias: x
destinations:
  - /d
`)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Log.Level != "INFO" {
		t.Errorf("default log level = %q, want INFO", cfg.Log.Level)
	}
	if cfg.Log.File == "" {
		t.Error("default log file is empty")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	Init()
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
