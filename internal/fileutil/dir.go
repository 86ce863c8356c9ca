package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirMode is the permission used for directories created by EnsureDir.
const dirMode = 0o755

// EnsureDir creates dir and any missing parents. Returns nil if the
// directory already exists.
func EnsureDir(dir string) error {
	if dir == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureDirForFile creates the parent directory of filePath so the file
// itself can be created without a missing-directory error.
func EnsureDirForFile(filePath string) error {
	if filePath == "" {
		return ErrEmptyPath
	}
	if err := EnsureDir(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("ensure dir for %s: %w", filePath, err)
	}
	return nil
}
