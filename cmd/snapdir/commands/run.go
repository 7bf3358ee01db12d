package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/snapdir/internal/config"
	"github.com/thoreinstein/snapdir/internal/errors"
	"github.com/thoreinstein/snapdir/internal/progress"
	"github.com/thoreinstein/snapdir/internal/snapshot"
)

// showFiles holds the value of the --show-files flag.
var showFiles bool

func init() {
	runCmd.Flags().BoolVar(&showFiles, "show-files", false,
		"print a line per copied file")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a backup",
	Long: `Run a backup of all configured source directories.

Every configured destination receives a snapshot directory named after
the run timestamp, containing each source under its alias. Files with
excluded extensions are skipped. A notes file recording the run
configuration is written into every snapshot root before copying
begins.

Individual copy failures are logged and counted but do not abort the
run; the final summary distinguishes a clean run from one with
failures.`,
	Example: `  # Run using the default config search path
  snapdir run

  # Run with an explicit config file and per-file output
  snapdir run --config backup.yaml --show-files`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, _ []string) error {
	return runBackup(cmd.OutOrStdout(), cfg)
}

func runBackup(w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.NewConfigError(err)
	}

	sources := make([]snapshot.Source, len(cfg.Sources))
	for i, src := range cfg.Sources {
		sources[i] = snapshot.Source{Path: src.Path, Alias: src.Alias}
	}

	plan := snapshot.NewPlan(sources, cfg.Destinations,
		snapshot.NewExclusionSet(cfg.Exclude...), cfg.Notes)

	var reporter progress.Reporter = progress.Nop{}
	if !quiet {
		opts := []progress.Option{}
		if showFiles {
			opts = append(opts, progress.WithPerFileOutput())
		}
		reporter = progress.NewTerminal(w, opts...)
	}

	runner := snapshot.NewRunner(
		snapshot.WithLogger(slog.Default()),
		snapshot.WithReporter(reporter),
	)

	summary, err := runner.Run(plan)
	if err != nil {
		if errors.Is(err, snapshot.ErrSourceMissing) {
			return errors.NewUserError(err, "check the configured source directories")
		}
		return errors.NewSystemError(err, "see the log file for details")
	}

	if summary.HasFailures() {
		fmt.Fprintf(w, "\nFinished with %d failed copies, see %s for details.\n",
			summary.FailedCopies(), logFilePath())
	} else {
		fmt.Fprintln(w, "\nFinished with no failures.")
	}

	return nil
}

// logFilePath returns the log file the current run wrote to.
func logFilePath() string {
	if logFile != "" {
		return logFile
	}
	if cfg != nil && cfg.Log.File != "" {
		return cfg.Log.File
	}
	return os.DevNull
}
