package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/snapdir/internal/errors"
	"github.com/thoreinstein/snapdir/internal/snapshot"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [destination...]",
	Short: "List existing snapshots",
	Long: `List the timestamped snapshots accumulated under the configured
backup destinations, newest first.

Destinations can also be given as arguments, overriding the configured
list. Directories whose name is not a run timestamp are ignored.`,
	Example: `  # List snapshots under all configured destinations
  snapdir list

  # List snapshots under a specific directory
  snapdir list /mnt/backup`,
	RunE: runList,
}

// snapshotInfo describes one timestamped snapshot directory.
type snapshotInfo struct {
	Timestamp time.Time
	Path      string
	FileCount int
}

func runList(cmd *cobra.Command, args []string) error {
	destinations := args
	if len(destinations) == 0 {
		if cfg != nil {
			destinations = cfg.Destinations
		}
		if len(destinations) == 0 {
			return errors.NewUserError(
				errors.New("no destinations configured"),
				"pass a destination argument or configure destinations")
		}
	}
	return listSnapshots(cmd.OutOrStdout(), destinations)
}

func listSnapshots(w io.Writer, destinations []string) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)

	for _, dest := range destinations {
		snapshots, err := readSnapshots(dest)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\n", dest)
		if len(snapshots) == 0 {
			fmt.Fprintf(tw, "  (no snapshots)\n")
			continue
		}
		for _, s := range snapshots {
			fmt.Fprintf(tw, "  %s\t%d files\n", s.Timestamp.Format(snapshot.TimestampFormat), s.FileCount)
		}
	}

	return errors.Wrap(tw.Flush(), "flushing output")
}

// readSnapshots returns the snapshots under one destination, newest first.
func readSnapshots(dest string) ([]snapshotInfo, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading destination %s", dest)
	}

	var snapshots []snapshotInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ts, err := time.Parse(snapshot.TimestampFormat, entry.Name())
		if err != nil {
			continue
		}

		path := filepath.Join(dest, entry.Name())
		count, err := countFiles(path)
		if err != nil {
			return nil, errors.Wrapf(err, "inspecting snapshot %s", path)
		}
		snapshots = append(snapshots, snapshotInfo{
			Timestamp: ts,
			Path:      path,
			FileCount: count,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})

	return snapshots, nil
}

// countFiles counts the files in a snapshot, excluding the notes file.
func countFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Base(path) == snapshot.NotesFileName && filepath.Dir(path) == root {
			return nil
		}
		count++
		return nil
	})
	return count, err
}
