// Package snapshot implements the core backup pipeline: enumerating
// files under a set of aliased source directories, mapping each file to
// its location under a timestamped snapshot root, filtering by excluded
// extension, and copying file by file while tolerating individual
// failures.
//
// A run copies the same enumerated file set into every configured
// destination, producing this layout:
//
//	<destination>/<timestamp>/<alias>/<path relative to source>
//
// The timestamp is computed once per run, so every destination receives
// an identically named snapshot. Each snapshot root also receives a
// plain-text notes file (backup_notes.txt) recording the run
// configuration before any copying into that root begins.
//
// # Running a backup
//
//	plan := snapshot.NewPlan(sources, destinations, exclude, "weekly run")
//	runner := snapshot.NewRunner(snapshot.WithLogger(logger))
//	summary, err := runner.Run(plan)
//
// Per-file copy failures are logged and counted in the returned Summary;
// they never abort the run. Only configuration problems (a missing
// source directory) and invariant violations (a file matching no source)
// are fatal.
package snapshot
