package snapshot

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// MapPath computes the destination of a source file under a snapshot
// root. The first source (in configured order) whose path is a
// path-segment prefix of filePath wins; its alias replaces the source
// path and the result is joined under rootDir.
//
// Matching is segment-aware: /data/a never claims files under /data/ab.
//
// Returns ErrNoSourceMatch if no source matches. For files produced by
// Enumerate from the same source list this cannot happen, so callers
// treat it as an invariant violation and abort the run.
func MapPath(sources []Source, rootDir, filePath string) (string, error) {
	for _, src := range sources {
		rel, ok := relativeTo(src.Path, filePath)
		if !ok {
			continue
		}
		return filepath.Join(rootDir, src.Alias, rel), nil
	}
	return "", errors.Wrapf(ErrNoSourceMatch, "%s", filePath)
}

// relativeTo returns path relative to dir if path sits under dir on a
// path-segment boundary.
func relativeTo(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
