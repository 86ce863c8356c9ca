package pidfile

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackProgram names the PID file when neither os.Args nor os.Executable
// yield a usable program name.
const fallbackProgram = "process"

// Identity is the process on whose behalf PID files are written.
type Identity struct {
	PID     int
	Program string // base name, used as the PID file stem
}

// CurrentIdentity returns the identity of the running process.
func CurrentIdentity() Identity {
	return Identity{
		PID:     os.Getpid(),
		Program: ProgramName(os.Args),
	}
}

// ProgramName returns the base name of the program invoked as args[0],
// falling back to the executable path and then to a fixed name.
func ProgramName(args []string) string {
	if len(args) > 0 {
		if name := baseName(args[0]); name != "" {
			return name
		}
	}
	if exe, err := os.Executable(); err == nil {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	return fallbackProgram
}

// baseName is filepath.Base without its "." and "/" results for empty or
// root-only inputs. Names that would still hold a separator are rejected.
func baseName(p string) string {
	if p == "" {
		return ""
	}
	b := filepath.Base(p)
	if b == "." || strings.ContainsAny(b, `/\`) {
		return ""
	}
	return b
}
