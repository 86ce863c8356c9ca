package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/giantswarm/procfiles/internal/sentinel"
)

// ErrEmptyPath is returned when a file or directory path is empty.
const ErrEmptyPath = sentinel.Error("path must not be empty")

// ExistState is the result of an existence check.
type ExistState int

const (
	// Absent means stat reported that nothing exists at the path.
	Absent ExistState = iota
	// Exists means a filesystem entry of any kind is present.
	Exists
	// CheckError means stat failed for a reason other than not-exist
	// (permission denied on a parent, I/O error, ...). Whether the entry
	// exists is unknown.
	CheckError
)

// String returns the state name.
func (s ExistState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Exists:
		return "exists"
	case CheckError:
		return "check-error"
	default:
		return fmt.Sprintf("ExistState(%d)", int(s))
	}
}

// Stat reports whether path exists. The returned error is non-nil only for
// CheckError and wraps the underlying stat failure.
func Stat(path string) (ExistState, error) {
	if path == "" {
		return CheckError, ErrEmptyPath
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Exists, nil
	case errors.Is(err, fs.ErrNotExist):
		return Absent, nil
	default:
		return CheckError, fmt.Errorf("stat %s: %w", path, err)
	}
}
