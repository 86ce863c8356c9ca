package procfiles

import (
	"os"
	"time"
)

// PIDConfigSnapshot holds a copy of pidConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures without reaching into internal packages.
type PIDConfigSnapshot struct {
	PID               int
	Program           string
	Lock              bool
	LockRetryInterval time.Duration
	Mode              os.FileMode
}

// ApplyPIDOptionsForTesting starts from the defaults NewPIDFile uses,
// applies opts, and returns a snapshot of the result.
func ApplyPIDOptionsForTesting(opts ...PIDOption) PIDConfigSnapshot {
	cfg := defaultPIDConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return PIDConfigSnapshot{
		PID:               cfg.Identity.PID,
		Program:           cfg.Identity.Program,
		Lock:              cfg.Lock,
		LockRetryInterval: cfg.LockRetryInterval,
		Mode:              cfg.Mode,
	}
}
