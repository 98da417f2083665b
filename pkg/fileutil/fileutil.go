// Package fileutil provides file lookup helpers for user-supplied
// asset paths.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve returns path when it exists, and otherwise retries the
// lookup case-insensitively within the same directory. Asset paths in
// config files frequently disagree with the on-disk casing.
func Resolve(path string) (string, error) {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return path, nil
	}
	return findCaseInsensitive(filepath.Dir(path), filepath.Base(path))
}

func findCaseInsensitive(dir, filename string) (string, error) {
	searchName := strings.ToLower(filename)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == searchName {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("file not found: %s (searched in %s)", filename, dir)
}
