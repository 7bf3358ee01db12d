package snapshot

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/snapdir/internal/logging"
	"github.com/thoreinstein/snapdir/internal/progress"
)

// Runner executes a backup plan. The logger and progress reporter are
// injected so the core stays testable without real sinks.
type Runner struct {
	logger   *slog.Logger
	reporter progress.Reporter
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the log sink for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReporter sets the progress reporter for the run.
func WithReporter(reporter progress.Reporter) Option {
	return func(r *Runner) {
		if reporter != nil {
			r.reporter = reporter
		}
	}
}

// NewRunner creates a Runner with the given options. By default logs
// are discarded and no progress is reported.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:   logging.NewDiscard(),
		reporter: progress.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the plan: enumerate once, then for every destination
// create the timestamped root, write the notes file, and copy each
// non-excluded file. Per-file failures are logged and tallied but never
// abort the run; a missing source or an unmappable file does.
func (r *Runner) Run(plan *Plan) (*Summary, error) {
	count, files, err := Enumerate(plan.Sources)
	if err != nil {
		return nil, err
	}
	r.logger.Info("enumerated sources", "files", count, "sources", len(plan.Sources))
	r.reporter.RunStarted(count, len(plan.Destinations))

	summary := &Summary{FilesFound: count}

	for _, dest := range plan.Destinations {
		root, err := InitRoot(dest, plan.Timestamp)
		if err != nil {
			return nil, err
		}
		if err := WriteNotes(root, plan); err != nil {
			return nil, err
		}
		r.logger.Info("snapshot root ready", "root", root)
		r.reporter.RootStarted(root)

		rs := RootSummary{Root: root}
		for _, file := range files {
			if plan.Exclude.Excluded(file) {
				r.logger.Debug("excluded by extension", "path", file)
				rs.Excluded++
				r.reporter.FileExcluded(file)
				continue
			}

			dst, err := MapPath(plan.Sources, root, file)
			if err != nil {
				return nil, err
			}

			if err := copyEntry(file, dst); err != nil {
				r.logger.Error("copy failed", "source", file, "destination", dst, "error", err)
				rs.Failed++
				r.reporter.FileFailed(file, err)
				continue
			}
			r.logger.Debug("copied", "source", file, "destination", dst)
			rs.Copied++
			r.reporter.FileCopied(file)
		}

		summary.Roots = append(summary.Roots, rs)
		r.logger.Info("snapshot complete", "root", root,
			"copied", rs.Copied, "excluded", rs.Excluded, "failed", rs.Failed)
		r.reporter.RootFinished(root, rs.Copied, rs.Excluded, rs.Failed)
	}

	return summary, nil
}

// copyEntry copies one source entry to dst, creating parent directories
// as needed. A symlink source is reproduced as a link to the same
// target rather than dereferenced.
func copyEntry(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	info, err := os.Lstat(src)
	if err != nil {
		return errors.Wrap(err, "stat source")
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := os.Readlink(src)
		if err != nil {
			return errors.Wrap(err, "reading symlink")
		}
		if err := os.Symlink(target, dst); err != nil {
			return errors.Wrap(err, "creating symlink")
		}
		return nil
	}

	return copyFile(src, dst, info.Mode().Perm())
}

// copyFile copies file contents and permission bits from src to dst.
func copyFile(src, dst string, perm fs.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrap(err, "copying file")
	}
	if err := dstFile.Close(); err != nil {
		return errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, perm); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	return nil
}
