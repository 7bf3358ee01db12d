package snapshot

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
)

// TimestampFormat is the layout for snapshot directory names.
// All destinations in one run share a single timestamp.
const TimestampFormat = "2006-01-02_15-04-05"

// NotesFileName is the name of the per-root notes file.
const NotesFileName = "backup_notes.txt"

// Sentinel errors for snapshot operations.
var (
	// ErrSourceMissing indicates a configured source directory does not
	// exist or is not a directory.
	ErrSourceMissing = errors.New("source directory missing")

	// ErrNoSourceMatch indicates a discovered file matched no configured
	// source. This should never happen for files produced by Enumerate
	// from the same source list and aborts the run.
	ErrNoSourceMatch = errors.New("file matches no configured source")
)

// Source is a backup input directory paired with the alias used as its
// path prefix inside every snapshot.
type Source struct {
	Path  string
	Alias string
}

// Plan holds the immutable inputs of a single run. The timestamp and
// hostname are captured once at plan creation so every destination
// receives an identically named snapshot.
type Plan struct {
	Sources      []Source
	Destinations []string
	Exclude      ExclusionSet
	Notes        string
	Timestamp    string
	Hostname     string
}

// NewPlan builds a Plan for one run, capturing the run timestamp and
// hostname.
func NewPlan(sources []Source, destinations []string, exclude ExclusionSet, notes string) *Plan {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Plan{
		Sources:      sources,
		Destinations: destinations,
		Exclude:      exclude,
		Notes:        notes,
		Timestamp:    time.Now().Format(TimestampFormat),
		Hostname:     hostname,
	}
}

// RootSummary tallies per-file outcomes for one snapshot root.
type RootSummary struct {
	Root     string
	Copied   int
	Excluded int
	Failed   int
}

// Summary aggregates the outcome of a run across all snapshot roots.
type Summary struct {
	FilesFound int
	Roots      []RootSummary
}

// FailedCopies returns the total number of failed copies across all roots.
func (s *Summary) FailedCopies() int {
	total := 0
	for _, r := range s.Roots {
		total += r.Failed
	}
	return total
}

// HasFailures reports whether any copy failed during the run.
func (s *Summary) HasFailures() bool {
	return s.FailedCopies() > 0
}
