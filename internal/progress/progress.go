// Package progress reports per-root and per-file backup progress to the
// terminal. Reporters are purely observational: they never influence
// control flow.
package progress

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter receives progress events during a run.
type Reporter interface {
	// RunStarted is called once, after enumeration.
	RunStarted(fileCount, destinationCount int)
	// RootStarted is called before copying into a snapshot root begins.
	RootStarted(root string)
	// FileCopied is called after a successful copy.
	FileCopied(path string)
	// FileExcluded is called when a file is skipped by extension.
	FileExcluded(path string)
	// FileFailed is called when a copy fails.
	FileFailed(path string, err error)
	// RootFinished is called after all files for a root were processed.
	RootFinished(root string, copied, excluded, failed int)
}

// Nop is a Reporter that discards all events.
type Nop struct{}

func (Nop) RunStarted(int, int)                {}
func (Nop) RootStarted(string)                 {}
func (Nop) FileCopied(string)                  {}
func (Nop) FileExcluded(string)                {}
func (Nop) FileFailed(string, error)           {}
func (Nop) RootFinished(string, int, int, int) {}

// Terminal writes human-readable progress lines to a writer, with color
// when the writer supports it.
type Terminal struct {
	out     io.Writer
	verbose bool

	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// Option configures a Terminal reporter.
type Option func(*Terminal)

// WithPerFileOutput enables a line per copied file in addition to the
// per-root lines.
func WithPerFileOutput() Option {
	return func(t *Terminal) {
		t.verbose = true
	}
}

// NewTerminal creates a Terminal reporter writing to out.
func NewTerminal(out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		out:    out,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) RunStarted(fileCount, destinationCount int) {
	fmt.Fprintf(t.out, "Copying %d files to %d locations.\n", fileCount, destinationCount)
}

func (t *Terminal) RootStarted(root string) {
	fmt.Fprintf(t.out, "Backing up to %s\n", root)
}

func (t *Terminal) FileCopied(path string) {
	if t.verbose {
		fmt.Fprintf(t.out, "  %s\n", path)
	}
}

func (t *Terminal) FileExcluded(path string) {
	if t.verbose {
		fmt.Fprintf(t.out, "  %s %s\n", t.yellow.Sprint("skipped"), path)
	}
}

func (t *Terminal) FileFailed(path string, err error) {
	fmt.Fprintf(t.out, "  %s %s: %v\n", t.red.Sprint("failed"), path, err)
}

func (t *Terminal) RootFinished(root string, copied, excluded, failed int) {
	status := t.green.Sprint("done")
	if failed > 0 {
		status = t.red.Sprintf("%d failed", failed)
	}
	fmt.Fprintf(t.out, "Finished %s: %d copied, %d excluded (%s)\n", root, copied, excluded, status)
}
