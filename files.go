package procfiles

import (
	"github.com/giantswarm/procfiles/internal/core"
	"github.com/giantswarm/procfiles/internal/fileutil"
)

// ExistState is the tri-state result of Stat.
type ExistState = fileutil.ExistState

const (
	// PathAbsent means nothing exists at the path.
	PathAbsent = fileutil.Absent
	// PathExists means a file, directory or other entry exists at the path.
	PathExists = fileutil.Exists
	// PathCheckError means the existence check itself failed; whether the
	// path exists is unknown.
	PathCheckError = fileutil.CheckError
)

// defaultAppender backs Append and Flush. It resolves the logger on every
// failure so SetLogger applies to appends already in flight.
var defaultAppender = fileutil.NewAppender(core.Logger, DefaultFileMode)

// Stat reports whether path exists. Failures other than "does not exist"
// are logged at warn level and reported as PathCheckError with the wrapped error.
func Stat(path string) (ExistState, error) {
	state, err := fileutil.Stat(path)
	if state == PathCheckError {
		core.Logger().Warn("existence check failed", "path", path, "error", err)
	}
	return state, err
}

// Exists reports whether path exists. A failed check counts as not existing;
// use Stat to tell the two apart.
func Exists(path string) bool {
	state, _ := Stat(path)
	return state == PathExists
}

// Read returns the content of path. A missing file yields an error matching
// ErrNotFound; any other failure is returned wrapped and does not match it.
func Read(path string) (string, error) {
	return fileutil.ReadFile(path)
}

// Write creates or truncates path and writes content to it.
func Write(path, content string) error {
	if err := fileutil.WriteFile(path, content, nil); err != nil {
		core.Logger().Debug("write failed", "path", path, "error", err)
		return err
	}
	return nil
}

// WriteAtomic writes content to a temporary file next to path and renames it
// into place, so readers see either the old or the new content.
func WriteAtomic(path, content string) error {
	if err := fileutil.WriteFile(path, content, &fileutil.WriteOptions{Atomic: true}); err != nil {
		core.Logger().Debug("atomic write failed", "path", path, "error", err)
		return err
	}
	return nil
}

// Append appends content to path in the background, creating the file if
// needed. It returns immediately. A failure is logged at error level and is
// reported by the next Flush, never to the caller of Append.
func Append(path, content string) {
	defaultAppender.Append(path, content)
}

// Flush waits for every Append issued before the call to finish and returns
// the first failure among them.
func Flush() error {
	return defaultAppender.Wait()
}
