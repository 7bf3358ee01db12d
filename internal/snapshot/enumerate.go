package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Enumerate recursively lists every file under each source directory,
// in source order. It returns the total file count and the file paths.
// Symlinks are listed as entries but never followed; empty directories
// contribute nothing.
//
// A source that does not exist, is not a directory, or cannot be read
// is a configuration problem and fails the enumeration immediately,
// before any snapshot directory is created.
func Enumerate(sources []Source) (int, []string, error) {
	var files []string

	for _, src := range sources {
		info, err := os.Stat(src.Path)
		if err != nil {
			return 0, nil, errors.Wrapf(ErrSourceMissing, "%s: %v", src.Path, err)
		}
		if !info.IsDir() {
			return 0, nil, errors.Wrapf(ErrSourceMissing, "%s is not a directory", src.Path)
		}

		err = filepath.WalkDir(src.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			// Symlinks (including links to directories) land here as
			// plain entries; dereferencing is deferred to copy time.
			files = append(files, path)
			return nil
		})
		if err != nil {
			return 0, nil, errors.Wrapf(err, "enumerating %s", src.Path)
		}
	}

	return len(files), files, nil
}
