package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFileExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsCSS
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"my-style", false},
		{"./custom.css", true},
		{"/abs/path.css", true},
		{`styles\win.css`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"body { margin: 0 }", true},
		{"default", false},
		{"./file.css", false},
	}

	for _, tt := range tests {
		if got := IsCSS(tt.in); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"notes.md", ".epub", "notes.epub"},
		{"docs/notes.markdown", ".epub", "docs/notes.epub"},
		{"noext", ".epub", "noext.epub"},
		{"dir.v2/noext", ".epub", "dir.v2/noext.epub"},
		{"a.b.c", ".epub", "a.b.epub"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
