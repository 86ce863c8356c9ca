package procfiles

import "context"

// PIDFile manages the PID file of one program in any number of directories.
//
// Per directory the file moves through
//
//	ABSENT --Create--> PRESENT --Remove--> ABSENT
//
// Create on PRESENT fails with ErrAlreadyRunning and Remove on ABSENT
// reports false; there are no other transitions.
type PIDFile interface {
	// Path returns <dir>/<program>.pid. It does not check that dir exists.
	Path(dir string) string

	// Create writes the process id to the PID file in dir and returns the
	// file's path. If a PID file already exists, Create returns "" and an
	// error matching ErrAlreadyRunning and leaves the file untouched. If the
	// existence check fails for another reason, nothing is written and that
	// error is returned.
	//
	// Create waits for the PID lock while another process holds it and
	// gives up with ctx's error when ctx is done.
	Create(ctx context.Context, dir string) (string, error)

	// Remove deletes the PID file in dir. It returns false, nil if there is
	// no PID file and true, nil once the file is deleted. Any other deletion
	// failure is returned as an error.
	Remove(ctx context.Context, dir string) (bool, error)

	// Read returns the pid stored in dir's PID file. A missing file yields
	// an error matching ErrNotFound; malformed content yields ErrInvalidPID.
	Read(dir string) (int, error)

	// Running returns the stored pid and whether a process with that pid
	// exists. A stale file reports running=false with a nil error.
	Running(dir string) (pid int, running bool, err error)
}
