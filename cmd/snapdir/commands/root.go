// Package commands implements the CLI commands for snapdir.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/snapdir/internal/config"
	"github.com/thoreinstein/snapdir/internal/errors"
	"github.com/thoreinstein/snapdir/internal/logging"
)

// cfgFile holds the value of the --config flag.
var cfgFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the value of the --log-file flag; it overrides the
// config file's log.file setting.
var logFile string

// cfg and cfgLoadErr hold the result of config loading, captured during
// initialization and reported from PersistentPreRunE.
var (
	cfg        *config.Config
	cfgLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/snapdir/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (overrides configured log level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to this file instead of the configured one")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, cfgLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "snapdir",
	Short: "Copy directory trees into timestamped backup snapshots",
	Long: `snapdir copies a set of named source directories into timestamped
snapshot directories under one or more backup destinations.

Each source directory is paired with a short alias that replaces its
path inside the snapshot, files with excluded extensions are skipped,
and every snapshot root receives a notes file recording the run
configuration. Individual copy failures are logged and counted but
never abort a run.

Snapshots are laid out as:

  <destination>/<timestamp>/<alias>/<path relative to source>

with one identical timestamp across all destinations of a run.`,
	Example: `  # Run a backup using ./config.yaml
  snapdir run

  # Run with an explicit config file
  snapdir run --config /etc/snapdir/config.yaml

  # List existing snapshots
  snapdir list

  # Show the effective configuration
  snapdir config show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger from the flags and the
// loaded config. The run command also tees logs into the log file,
// which is truncated at the start of every run.
func setupLogging(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if cfgLoadErr != nil {
		return errors.NewConfigError(cfgLoadErr)
	}

	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity > 0:
		level = logging.LevelFromVerbosity(verbosity)
	default:
		// A log level outside {ERROR, INFO, DEBUG} is a configuration
		// error and is reported before any file operation begins.
		var err error
		level, err = logging.LevelFromName(cfg.Log.Level)
		if err != nil {
			return errors.NewConfigError(err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if cmd.Name() == "run" {
		path := logFile
		if path == "" {
			path = cfg.Log.File
		}
		if path != "" {
			f, err := openLogFile(path)
			if err != nil {
				return errors.NewUserError(err, "failed to open log file")
			}
			// File output uses JSON format
			handlers = append(handlers, slog.NewJSONHandler(f, opts))
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// openLogFile opens the run log file, truncating any previous run's
// contents and creating parent directories as needed.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return f, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
