package procfiles

import (
	"context"
	"fmt"

	"github.com/giantswarm/procfiles/internal/core"
	"github.com/giantswarm/procfiles/internal/pidfile"
)

var _ PIDFile = (*pidFileWrapper)(nil)

// pidFileWrapper hides *pidfile.Manager behind the PIDFile interface so that
// callers cannot reach internal methods through a type assertion.
type pidFileWrapper struct {
	m *pidfile.Manager
}

func (w *pidFileWrapper) Path(dir string) string {
	return w.m.Path(dir)
}

func (w *pidFileWrapper) Create(ctx context.Context, dir string) (string, error) {
	return w.m.Create(ctx, dir)
}

func (w *pidFileWrapper) Remove(ctx context.Context, dir string) (bool, error) {
	return w.m.Remove(ctx, dir)
}

func (w *pidFileWrapper) Read(dir string) (int, error) {
	return w.m.Read(dir)
}

func (w *pidFileWrapper) Running(dir string) (int, bool, error) {
	return w.m.Running(dir)
}

// defaultPIDConfig returns the configuration NewPIDFile starts from: the
// current process identity, locking on, default retry interval and mode.
func defaultPIDConfig() pidConfig {
	return pidConfig{pidfile.Config{
		Identity:          pidfile.CurrentIdentity(),
		Lock:              true,
		LockRetryInterval: DefaultLockRetryInterval,
		Mode:              DefaultFileMode,
	}}
}

// NewPIDFile returns a PIDFile for the running process, adjusted by opts.
// It performs no I/O.
//
// Panics if an option receives an invalid value; see the individual With*
// functions.
//
//nolint:ireturn // Returns PIDFile interface by design for testability (mockable).
func NewPIDFile(opts ...PIDOption) PIDFile {
	cfg := defaultPIDConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Logger = core.Logger()

	m, err := pidfile.New(cfg.Config)
	if err != nil {
		// Every field is either a default or was validated by its option.
		panic(fmt.Sprintf("procfiles: %v", err))
	}
	return &pidFileWrapper{m: m}
}

// PIDFilePath returns <dir>/<program>.pid for the running process, where
// program is the base name of os.Args[0].
func PIDFilePath(dir string) string {
	return pidfile.Path(dir, pidfile.CurrentIdentity().Program)
}
