package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ValidateRoot resolves path to an absolute directory path. It fails with a
// distinct message when the path is missing, inaccessible, or not a directory.
// A failed validation is the only error that aborts a run before scanning.
func ValidateRoot(path string) (string, error) {
	if path == "" {
		return "", errors.New("no directory path given")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	st, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("directory %q was not found", abs)
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("no permission to access %q", abs)
	case err != nil:
		return "", fmt.Errorf("stat %q: %w", abs, err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%q is a file, not a directory", abs)
	}
	return abs, nil
}
