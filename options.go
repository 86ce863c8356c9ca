package procfiles

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/giantswarm/procfiles/internal/pidfile"
)

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("procfiles: %s must not be empty", name))
	}
}

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("procfiles: %s must be greater than 0, got %v", name, v))
	}
}

// pidConfig wraps pidfile.Config so the internal type stays out of the
// PIDOption signature.
type pidConfig struct {
	pidfile.Config
}

// PIDOption configures a PIDFile during construction via NewPIDFile.
//
// Option constructors panic on invalid input. Option values are normally
// constants chosen by the host program, so an invalid value is a programmer
// error and is reported immediately, like [regexp.MustCompile].
type PIDOption func(*pidConfig)

// WithProgramName sets the PID file stem, replacing the base name of
// os.Args[0]. Panics if name is empty or contains a path separator.
func WithProgramName(name string) PIDOption {
	requireNonEmpty("program name", name)
	if strings.ContainsAny(name, `/\`) {
		panic(fmt.Sprintf("procfiles: program name must not contain path separators, got %q", name))
	}
	return func(c *pidConfig) {
		c.Identity.Program = name
	}
}

// WithPID sets the process id written to the PID file, replacing
// os.Getpid(). Useful when a supervisor writes the file on behalf of a child.
// Panics if pid <= 0.
func WithPID(pid int) PIDOption {
	requirePositive("pid", pid)
	return func(c *pidConfig) {
		c.Identity.PID = pid
	}
}

// WithLockRetryInterval sets how often Create and Remove retry taking the
// PID lock.
//
// Default: 50 milliseconds.
//
// Panics if d <= 0.
func WithLockRetryInterval(d time.Duration) PIDOption {
	requirePositive("lock retry interval", d)
	return func(c *pidConfig) {
		c.LockRetryInterval = d
	}
}

// WithoutLock disables the <path>.lock file. Create still refuses to
// overwrite an existing PID file (O_EXCL), but the existence check and the
// write are no longer serialised with other processes' Remove calls.
func WithoutLock() PIDOption {
	return func(c *pidConfig) {
		c.Lock = false
	}
}

// WithFileMode sets the permission of newly created PID files.
//
// Default: 0644.
//
// Panics if mode has no permission bits.
func WithFileMode(mode os.FileMode) PIDOption {
	if mode.Perm() == 0 {
		panic(fmt.Sprintf("procfiles: file mode must have permission bits, got %v", mode))
	}
	return func(c *pidConfig) {
		c.Mode = mode.Perm()
	}
}
