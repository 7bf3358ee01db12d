package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitRoot(t *testing.T) {
	dest := t.TempDir()

	root, err := InitRoot(dest, "2026-01-02_03-04-05")
	if err != nil {
		t.Fatal(err)
	}
	if root != filepath.Join(dest, "2026-01-02_03-04-05") {
		t.Errorf("root = %q", root)
	}

	info, err := os.Stat(root)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("root is not a directory")
	}
}

func TestInitRoot_Idempotent(t *testing.T) {
	dest := t.TempDir()

	first, err := InitRoot(dest, "2026-01-02_03-04-05")
	if err != nil {
		t.Fatal(err)
	}
	second, err := InitRoot(dest, "2026-01-02_03-04-05")
	if err != nil {
		t.Fatalf("second InitRoot errored: %v", err)
	}
	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
}

func TestInitRoot_CreatesDestination(t *testing.T) {
	// A destination that does not exist yet is created along with the root.
	dest := filepath.Join(t.TempDir(), "not", "yet", "there")

	root, err := InitRoot(dest, "2026-01-02_03-04-05")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatal(err)
	}
}
