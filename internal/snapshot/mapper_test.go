package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestMapPath(t *testing.T) {
	sources := []Source{
		{Path: "/home/user/docs", Alias: "docs"},
		{Path: "/var/media", Alias: "media"},
	}

	tests := []struct {
		file string
		want string
	}{
		{"/home/user/docs/a.txt", "/backup/2026-01-02_03-04-05/docs/a.txt"},
		{"/home/user/docs/sub/dir/b.txt", "/backup/2026-01-02_03-04-05/docs/sub/dir/b.txt"},
		{"/var/media/song.mp3", "/backup/2026-01-02_03-04-05/media/song.mp3"},
	}

	root := "/backup/2026-01-02_03-04-05"
	for _, tt := range tests {
		got, err := MapPath(sources, root, tt.file)
		if err != nil {
			t.Fatalf("MapPath(%q) returned error: %v", tt.file, err)
		}
		if got != tt.want {
			t.Errorf("MapPath(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestMapPath_NoMatch(t *testing.T) {
	sources := []Source{{Path: "/home/user/docs", Alias: "docs"}}

	_, err := MapPath(sources, "/backup/ts", "/etc/passwd")
	if err == nil {
		t.Fatal("expected error for unmatched file")
	}
	if !errors.Is(err, ErrNoSourceMatch) {
		t.Errorf("expected ErrNoSourceMatch, got %v", err)
	}
}

// One source path being a textual substring of another must not cause a
// mismatch: matching is path-segment-aware, not raw substring search.
func TestMapPath_SegmentBoundary(t *testing.T) {
	sources := []Source{
		{Path: "/data/a", Alias: "short"},
		{Path: "/data/ab", Alias: "long"},
	}

	got, err := MapPath(sources, "/backup/ts", "/data/ab/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/backup/ts", "long", "file.txt")
	if got != want {
		t.Errorf("MapPath under /data/ab = %q, want %q", got, want)
	}

	got, err = MapPath(sources, "/backup/ts", "/data/a/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	want = filepath.Join("/backup/ts", "short", "file.txt")
	if got != want {
		t.Errorf("MapPath under /data/a = %q, want %q", got, want)
	}
}

func TestMapPath_FirstMatchWins(t *testing.T) {
	// Not rejected here: overlap handling is the config layer's job, the
	// mapper just honors configured order.
	sources := []Source{
		{Path: "/data", Alias: "outer"},
		{Path: "/data/inner", Alias: "inner"},
	}

	got, err := MapPath(sources, "/b/ts", "/data/inner/f.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/b/ts", "outer", "inner", "f.txt")
	if got != want {
		t.Errorf("MapPath = %q, want %q", got, want)
	}
}

func TestMapPath_RelativeSource(t *testing.T) {
	sources := []Source{{Path: "testdata/src", Alias: "s"}}

	got, err := MapPath(sources, "dst/ts", "testdata/src/keep.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("dst/ts", "s", "keep.txt")
	if got != want {
		t.Errorf("MapPath = %q, want %q", got, want)
	}
}
