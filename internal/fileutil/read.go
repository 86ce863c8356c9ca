package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/giantswarm/procfiles/internal/sentinel"
)

// ErrNotFound is returned by ReadFile when nothing exists at the path.
const ErrNotFound = sentinel.Error("file not found")

// ReadFile returns the whole content of path as text.
//
// A missing file yields an error matching ErrNotFound. Every other failure
// (permission, path is a directory, I/O) is wrapped as-is and does not match
// ErrNotFound, so callers can tell the two apart.
func ReadFile(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the host process
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
