package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsRecipeFile(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"pie.md", true},
		{"pie.MD", true},
		{"pie.Md", true},
		{"pie.txt", false},
		{".hidden.md", false},
		{"pie", false},
		{"pie.md.bak", false},
	}
	for _, tc := range cases {
		if got := isRecipeFile(tc.name); got != tc.want {
			t.Fatalf("isRecipeFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	got, err := uniquePath(dir, "pie")
	if err != nil {
		t.Fatalf("uniquePath: %v", err)
	}
	if got != filepath.Join(dir, "pie.md") {
		t.Fatalf("uniquePath = %q", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "pie.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = uniquePath(dir, "pie")
	if err != nil {
		t.Fatalf("uniquePath: %v", err)
	}
	if got != filepath.Join(dir, "pie-1.md") {
		t.Fatalf("uniquePath = %q", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "pie-1.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = uniquePath(dir, "pie")
	if err != nil {
		t.Fatalf("uniquePath: %v", err)
	}
	if got != filepath.Join(dir, "pie-2.md") {
		t.Fatalf("uniquePath = %q", got)
	}
}

func TestUniquePathStatFailureIsTerminal(t *testing.T) {
	dir := t.TempDir()

	// A filename over the filesystem limit makes stat fail with something
	// other than "does not exist"; that must surface instead of looping
	// on suffixes forever.
	slug := strings.Repeat("a", 300)
	if _, err := uniquePath(dir, slug); err == nil {
		t.Fatalf("expected error for unstatable candidate")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pie.md")

	if err := writeFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
	if err := writeFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("writeFileAtomic overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content = %q", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory entries = %d, want 1", len(entries))
	}
}
