package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/snapdir/internal/errors"
	"github.com/thoreinstein/snapdir/internal/logging"
)

// Validate checks the configuration before any file operation begins.
// It enforces the restricted log level set, requires at least one source
// and destination, and rejects alias and source-path layouts that would
// make path mapping ambiguous.
func (c *Config) Validate() error {
	if _, err := logging.LevelFromName(c.Log.Level); err != nil {
		return err
	}

	if len(c.Sources) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "at least one source is required")
	}
	if len(c.Destinations) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "at least one destination is required")
	}

	aliases := make(map[string]struct{}, len(c.Sources))
	for i, src := range c.Sources {
		if src.Path == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "source %d has an empty path", i)
		}
		if src.Alias == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "source %s has an empty alias", src.Path)
		}
		if strings.ContainsRune(src.Alias, filepath.Separator) {
			return errors.Wrapf(errors.ErrInvalidConfig, "alias %q must not contain a path separator", src.Alias)
		}
		if _, dup := aliases[src.Alias]; dup {
			return errors.Wrapf(errors.ErrInvalidConfig, "alias %q is used by more than one source", src.Alias)
		}
		aliases[src.Alias] = struct{}{}
	}

	// Nested or duplicate source paths would make the first-match mapping
	// ambiguous, so they are rejected outright.
	for i, a := range c.Sources {
		for j, b := range c.Sources {
			if i == j {
				continue
			}
			if underneath(a.Path, b.Path) {
				return errors.Wrapf(errors.ErrInvalidConfig,
					"source %s overlaps source %s", b.Path, a.Path)
			}
		}
	}

	for i, dest := range c.Destinations {
		if dest == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "destination %d is empty", i)
		}
	}

	return nil
}

// underneath reports whether path equals dir or sits under it on a
// path-segment boundary.
func underneath(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
