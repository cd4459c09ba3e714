// Package filex provides small filesystem helpers for the CSV export area
// (the app's private document storage).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any parents) if needed and returns its absolute
// path. Relative paths are resolved against the current working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// WriteString writes contents to name inside dir, creating the directory if
// needed and overwriting any existing file. It returns the full path of the
// written file.
func WriteString(dir, name, contents string) (string, error) {
	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(abs, name)

	if err := os.WriteFile(path, []byte(contents), 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
