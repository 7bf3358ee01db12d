package snapshot

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExclusionSet holds lowercase file extensions (with leading dot) that
// are skipped during copying. It applies uniformly across all sources
// and all destinations.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from the given extensions.
// Entries are lowercased and a missing leading dot is added; empty
// entries are ignored.
func NewExclusionSet(extensions ...string) ExclusionSet {
	set := make(ExclusionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Excluded reports whether the file's extension is in the set. The
// extension is the text after the last '.' of the final path segment,
// compared case-insensitively. Files without an extension are never
// excluded.
func (s ExclusionSet) Excluded(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}

// Extensions returns the set's extensions in sorted order.
func (s ExclusionSet) Extensions() []string {
	exts := make([]string, 0, len(s))
	for ext := range s {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
