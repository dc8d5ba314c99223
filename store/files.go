package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// writeFileAtomic writes data through a temporary file in the target
// directory and renames it into place, so readers never observe a partially
// written recipe.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".recipemd-*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: close temp file for %s: %w", path, err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: chmod temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: rename into %s: %w", path, err)
	}
	return nil
}

// uniquePath returns "<slug>.md" inside dir, appending -1, -2, ... to the
// stem until the name is free. Filename collisions are resolved here rather
// than surfaced to callers; any stat failure other than "does not exist" is
// terminal, since trying further suffixes would fail the same way.
func uniquePath(dir, slug string) (string, error) {
	candidate := filepath.Join(dir, slug+".md")
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("store: stat %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, slug+"-"+strconv.Itoa(n)+".md")
	}
}

// isRecipeFile matches visible files with a .md extension, case-insensitive.
func isRecipeFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".md")
}
