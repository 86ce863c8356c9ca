package procfiles

import (
	"github.com/giantswarm/procfiles/internal/fileutil"
	"github.com/giantswarm/procfiles/internal/pidfile"
)

// Default configuration values for NewPIDFile and the file functions.
const (
	// PIDFileExt is the extension of PID files.
	PIDFileExt = pidfile.Ext

	// DefaultFileMode is the permission used for files created by Write,
	// Append and PIDFile.Create.
	DefaultFileMode = fileutil.DefaultFileMode

	// DefaultLockRetryInterval is how often PIDFile.Create and Remove retry
	// taking the PID lock while another process holds it.
	DefaultLockRetryInterval = pidfile.DefaultLockRetryInterval
)
