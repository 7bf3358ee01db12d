package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/snapdir/pkg/fileutil"
)

// WriteNotes writes the plain-text notes file into a snapshot root,
// overwriting any previous one. The file records the run configuration
// only, never copy outcomes, and is written before any copying into the
// root begins. The destination currently being written is marked
// "(here)" in the destination list.
func WriteNotes(rootDir string, plan *Plan) error {
	path := filepath.Join(rootDir, NotesFileName)
	data := []byte(renderNotes(rootDir, plan))
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func renderNotes(rootDir string, plan *Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "snapdir run %s\n", plan.Timestamp)
	fmt.Fprintf(&b, "host: %s\n", plan.Hostname)

	b.WriteString("\nsources:\n")
	for i, src := range plan.Sources {
		fmt.Fprintf(&b, "  [%d] %s -> %s\n", i, src.Path, src.Alias)
	}

	b.WriteString("\ndestinations:\n")
	for i, dest := range plan.Destinations {
		marker := ""
		if filepath.Join(dest, plan.Timestamp) == rootDir {
			marker = " (here)"
		}
		fmt.Fprintf(&b, "  [%d] %s%s\n", i, dest, marker)
	}

	b.WriteString("\nexcluded extensions:\n")
	if len(plan.Exclude) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, ext := range plan.Exclude.Extensions() {
		fmt.Fprintf(&b, "  %s\n", ext)
	}

	b.WriteString("\nnotes:\n")
	b.WriteString(plan.Notes)
	if !strings.HasSuffix(plan.Notes, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}
