package snapshot

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// InitRoot ensures the timestamped snapshot directory exists under the
// destination and returns its path. An already existing directory is
// reused, so retried or same-second runs do not error.
func InitRoot(destination, timestamp string) (string, error) {
	root := filepath.Join(destination, timestamp)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating snapshot directory %s", root)
	}
	return root, nil
}
