//go:build unix

package pidfile

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Alive reports whether a process with the given pid exists. Only positive
// pids are considered; kill(2) gives 0 and negative values process-group
// meanings that do not identify a single process.
func Alive(pid int) bool {
	if pid < 1 {
		return false
	}
	// Signal 0 performs the permission and existence checks without
	// delivering anything. EPERM means the process exists but belongs to
	// someone else.
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
