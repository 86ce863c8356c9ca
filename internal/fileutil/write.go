package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/giantswarm/procfiles/internal/sentinel"
)

// ErrExists is returned by an exclusive WriteFile when the target is
// already present.
const ErrExists = sentinel.Error("file already exists")

// ErrAtomicExclusive is returned when WriteOptions asks for both Atomic and
// Exclusive. A rename always replaces its target, so the two cannot be combined.
const ErrAtomicExclusive = sentinel.Error("atomic and exclusive writes are mutually exclusive")

// DefaultFileMode is the permission used when WriteOptions.Mode is nil.
const DefaultFileMode os.FileMode = 0o644

// WriteOptions configures WriteFile.
type WriteOptions struct {
	Mode      *os.FileMode // Optional: permissions for a newly created file (ignored on Windows)
	Sync      bool         // If true, call Sync() before closing
	Atomic    bool         // If true, write to a temp file then rename onto path
	Exclusive bool         // If true, fail with ErrExists instead of truncating an existing file
}

// WriteFile writes content to path, creating the file or truncating an
// existing one. If opts is nil the file is opened with O_TRUNC, mode 0644,
// no sync.
//
// With Exclusive the file is opened with O_CREATE|O_EXCL: the existence check
// and the create are one system call, so of two racing writers exactly one
// succeeds and the other gets ErrExists. With Atomic the data goes to a temp
// file in the same directory and is renamed onto path once fully written, so
// readers never observe a partial file.
func WriteFile(path, content string, opts *WriteOptions) (retErr error) {
	if path == "" {
		return ErrEmptyPath
	}

	var o WriteOptions
	if opts != nil {
		o = *opts
	}
	if o.Atomic && o.Exclusive {
		return ErrAtomicExclusive
	}

	f, writePath, err := openForWrite(path, resolveFileMode(&o), o)
	if err != nil {
		return err
	}
	defer func() {
		// Only a temp file is cleaned up; a failed in-place write leaves
		// whatever the OS managed to persist, like os.WriteFile does.
		if retErr != nil && writePath != path {
			_ = os.Remove(writePath)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return finalizeWrite(f, writePath, path, o.Sync || o.Atomic)
}

// finalizeWrite syncs (if requested), closes, and renames the written file.
func finalizeWrite(f *os.File, writePath, dst string, doSync bool) error {
	// fsync before rename, otherwise a crash could leave dst renamed but empty.
	if doSync {
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return fmt.Errorf("sync %s: %w", dst, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	if writePath != dst {
		if err := os.Rename(writePath, dst); err != nil {
			return fmt.Errorf("rename temp file to %s: %w", dst, err)
		}
	}

	return nil
}

// resolveFileMode returns the file mode from opts, defaulting to DefaultFileMode.
func resolveFileMode(opts *WriteOptions) os.FileMode {
	if opts.Mode != nil {
		return *opts.Mode
	}
	return DefaultFileMode
}

// openForWrite opens the file that receives the content and returns it with
// its path. For atomic writes that path is a temp file next to dst.
func openForWrite(dst string, mode os.FileMode, o WriteOptions) (*os.File, string, error) {
	if o.Atomic {
		tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".tmp-"+filepath.Base(dst)+"-*")
		if err != nil {
			return nil, "", fmt.Errorf("create temp file: %w", err)
		}
		writePath := tmpFile.Name()
		if err := tmpFile.Chmod(mode); err != nil {
			_ = tmpFile.Close()
			_ = os.Remove(writePath) //nolint:gosec // G304: writePath is from os.CreateTemp, not user input.
			return nil, "", fmt.Errorf("chmod temp file: %w", err)
		}
		return tmpFile, writePath, nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if o.Exclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(dst, flags, mode) //nolint:gosec // G304: paths are supplied by the host process
	if err != nil {
		if o.Exclusive && errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", dst, ErrExists)
		}
		return nil, "", fmt.Errorf("open %s: %w", dst, err)
	}
	return f, dst, nil
}
