package procfiles

import (
	"github.com/giantswarm/procfiles/internal/confparse"
	"github.com/giantswarm/procfiles/internal/fileutil"
	"github.com/giantswarm/procfiles/internal/pidfile"
)

// Sentinel errors for error inspection with errors.Is.
const (
	// ErrNotFound is returned by Read, and wrapped by LoadConfig and
	// PIDFile.Read, when the file does not exist.
	ErrNotFound = fileutil.ErrNotFound

	// ErrEmptyPath is returned by the file functions when path is empty.
	ErrEmptyPath = fileutil.ErrEmptyPath

	// ErrAlreadyRunning is returned by PIDFile.Create when a PID file is
	// already present in the directory.
	ErrAlreadyRunning = pidfile.ErrAlreadyRunning

	// ErrInvalidPID is returned by PIDFile.Read when the file does not hold
	// a positive decimal pid.
	ErrInvalidPID = pidfile.ErrInvalidPID

	// ErrEmptyDir is returned by PIDFile operations when dir is empty.
	ErrEmptyDir = pidfile.ErrEmptyDir

	// ErrConfigNotFound is returned by LoadConfig when the configuration
	// file does not exist.
	ErrConfigNotFound = confparse.ErrConfigNotFound

	// ErrNotImplemented is returned by SaveConfig.
	ErrNotImplemented = confparse.ErrNotImplemented
)
