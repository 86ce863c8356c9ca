//go:build !unix

package pidfile

import "os"

// Alive reports whether a process with the given pid exists. On non-unix
// platforms os.FindProcess opens a handle to the process and fails when it
// does not exist.
func Alive(pid int) bool {
	if pid < 1 {
		return false
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = p.Release()
	return true
}
