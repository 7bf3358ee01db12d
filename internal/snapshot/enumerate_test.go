package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerate(t *testing.T) {
	src1 := t.TempDir()
	src2 := t.TempDir()

	writeFile(t, filepath.Join(src1, "a.txt"), "a")
	writeFile(t, filepath.Join(src1, "sub", "deep", "b.txt"), "b")
	writeFile(t, filepath.Join(src2, "c.txt"), "c")

	// Empty directories contribute nothing.
	if err := os.MkdirAll(filepath.Join(src1, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	count, files, err := Enumerate([]Source{
		{Path: src1, Alias: "one"},
		{Path: src2, Alias: "two"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if len(files) != count {
		t.Errorf("len(files) = %d, want %d", len(files), count)
	}

	found := make(map[string]bool, len(files))
	for _, f := range files {
		found[f] = true
	}
	for _, want := range []string{
		filepath.Join(src1, "a.txt"),
		filepath.Join(src1, "sub", "deep", "b.txt"),
		filepath.Join(src2, "c.txt"),
	} {
		if !found[want] {
			t.Errorf("missing %s in enumeration", want)
		}
	}
}

func TestEnumerate_MissingSource(t *testing.T) {
	_, _, err := Enumerate([]Source{
		{Path: filepath.Join(t.TempDir(), "does-not-exist"), Alias: "x"},
	})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("expected ErrSourceMissing, got %v", err)
	}
}

func TestEnumerate_SourceIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "x")

	_, _, err := Enumerate([]Source{{Path: file, Alias: "x"}})
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("expected ErrSourceMissing for non-directory source, got %v", err)
	}
}

func TestEnumerate_SymlinkListedNotFollowed(t *testing.T) {
	src := t.TempDir()
	outside := t.TempDir()

	writeFile(t, filepath.Join(outside, "target", "inside.txt"), "x")
	if err := os.Symlink(filepath.Join(outside, "target"), filepath.Join(src, "link")); err != nil {
		t.Fatal(err)
	}

	count, files, err := Enumerate([]Source{{Path: src, Alias: "s"}})
	if err != nil {
		t.Fatal(err)
	}

	// The link itself is an entry; the tree behind it is not traversed.
	if count != 1 {
		t.Fatalf("count = %d, want 1 (files: %v)", count, files)
	}
	if files[0] != filepath.Join(src, "link") {
		t.Errorf("files[0] = %q, want the symlink entry", files[0])
	}
}
