// Package paths resolves the default locations snapdir uses for its
// configuration and log files, following the XDG base directory spec.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "snapdir"

// ConfigDir returns the directory searched for the config file.
// Returns $XDG_CONFIG_HOME/snapdir.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultLogFile returns the default log file location used when the
// config does not name one. Returns $XDG_STATE_HOME/snapdir/snapdir.log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}
