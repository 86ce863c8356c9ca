// Package pidfile manages the PID file that marks a running instance of a
// program in a directory.
//
// The file lives at <dir>/<program>.pid and holds the creator's process id
// as decimal text. Manager.Create writes it only if nothing is there yet and
// Manager.Remove deletes it, giving the per-directory state machine
//
//	ABSENT --Create--> PRESENT --Remove--> ABSENT
//
// Create uses O_EXCL, so of two racing creators exactly one wins. When
// locking is enabled, Create and Remove additionally hold an advisory
// gofrs/flock lock on <dir>/<program>.pid.lock for the duration of their
// check-then-act sequence.
//
// The process identity (pid and program name) is injected through Config so
// the manager can be exercised without a real process context.
package pidfile
