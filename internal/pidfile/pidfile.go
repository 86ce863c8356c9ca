package pidfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/giantswarm/procfiles/internal/fileutil"
	"github.com/giantswarm/procfiles/internal/sentinel"
)

// Ext is the PID file extension.
const Ext = ".pid"

// ErrAlreadyRunning is returned by Create when a PID file is already present.
const ErrAlreadyRunning = sentinel.Error("pid file already exists")

// ErrInvalidPID is returned by Read when the PID file does not hold a
// positive decimal process id.
const ErrInvalidPID = sentinel.Error("pid file content is not a valid pid")

// ErrEmptyDir is returned by Create, Remove and Read when dir is empty. An
// empty dir would otherwise place the file at the filesystem root.
const ErrEmptyDir = sentinel.Error("pid directory must not be empty")

// Config configures a Manager.
type Config struct {
	Identity          Identity
	Lock              bool          // serialise Create/Remove through <path>.lock
	LockRetryInterval time.Duration // zero uses DefaultLockRetryInterval
	Mode              os.FileMode   // zero uses fileutil.DefaultFileMode
	Logger            *slog.Logger  // nil uses slog.Default()
}

func (c Config) validate() error {
	if c.Identity.PID < 1 {
		return fmt.Errorf("pid must be positive, got %d", c.Identity.PID)
	}
	if c.Identity.Program == "" {
		return errors.New("program name must not be empty")
	}
	if strings.ContainsAny(c.Identity.Program, `/\`) {
		return fmt.Errorf("program name %q must not contain path separators", c.Identity.Program)
	}
	if c.LockRetryInterval < 0 {
		return fmt.Errorf("lock retry interval must not be negative, got %v", c.LockRetryInterval)
	}
	return nil
}

// Manager creates, removes and inspects PID files for one Identity.
// Manager holds no mutable state; the filesystem is the only shared state.
type Manager struct {
	id            Identity
	lock          bool
	retryInterval time.Duration
	mode          os.FileMode
	log           *slog.Logger
}

// New returns a Manager for cfg.
func New(cfg Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid pidfile config: %w", err)
	}
	m := &Manager{
		id:            cfg.Identity,
		lock:          cfg.Lock,
		retryInterval: cfg.LockRetryInterval,
		mode:          cfg.Mode,
		log:           cfg.Logger,
	}
	if m.retryInterval == 0 {
		m.retryInterval = DefaultLockRetryInterval
	}
	if m.mode == 0 {
		m.mode = fileutil.DefaultFileMode
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	return m, nil
}

// Path returns the PID file path for dir. It neither validates nor touches dir.
func (m *Manager) Path(dir string) string {
	return Path(dir, m.id.Program)
}

// Path returns dir + "/" + program + ".pid".
func Path(dir, program string) string {
	return dir + "/" + program + Ext
}

// Create writes the manager's pid to the PID file in dir and returns its
// path. If a PID file is already there it returns "" and an error matching
// ErrAlreadyRunning, leaving the existing file untouched. If the existence
// check itself fails, the file is treated as present: nothing is written and
// the check error is returned.
func (m *Manager) Create(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		return "", ErrEmptyDir
	}
	path := m.Path(dir)

	unlock, err := m.acquire(ctx, path)
	if err != nil {
		return "", err
	}
	defer unlock()

	switch state, err := fileutil.Stat(path); state {
	case fileutil.Exists:
		m.log.Debug("pid file already present", "path", path)
		return "", fmt.Errorf("create %s: %w", path, ErrAlreadyRunning)
	case fileutil.CheckError:
		m.log.Warn("pid file existence check failed", "path", path, "error", err)
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	err = fileutil.WriteFile(path, strconv.Itoa(m.id.PID), &fileutil.WriteOptions{
		Mode:      &m.mode,
		Exclusive: true,
	})
	if err != nil {
		if errors.Is(err, fileutil.ErrExists) {
			// Another creator won between Stat and the exclusive open.
			m.log.Debug("pid file created concurrently", "path", path)
			return "", fmt.Errorf("create %s: %w", path, ErrAlreadyRunning)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	m.log.Debug("pid file created", "path", path, "pid", m.id.PID)
	return path, nil
}

// Remove deletes the PID file in dir. It returns false and no error when
// there is no PID file, and true once the file has been deleted. Any other
// deletion failure is returned.
//
// Remove on an absent file touches nothing: the existence check runs before
// the lock is taken, so no lock file is created and a missing dir is not an
// error. The check is repeated under the lock.
func (m *Manager) Remove(ctx context.Context, dir string) (bool, error) {
	if dir == "" {
		return false, ErrEmptyDir
	}
	path := m.Path(dir)

	if present, err := m.present(path); !present || err != nil {
		return false, err
	}

	unlock, err := m.acquire(ctx, path)
	if err != nil {
		return false, err
	}
	defer unlock()

	if present, err := m.present(path); !present || err != nil {
		return false, err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", path, err)
	}

	m.log.Debug("pid file removed", "path", path)
	return true, nil
}

// Read returns the pid stored in the PID file in dir. A missing file yields
// an error matching fileutil.ErrNotFound.
func (m *Manager) Read(dir string) (int, error) {
	if dir == "" {
		return 0, ErrEmptyDir
	}
	return ReadFile(m.Path(dir))
}

// Running returns the pid stored in dir's PID file and whether a process
// with that pid is alive. A stale file (process gone) yields running=false
// with a nil error.
func (m *Manager) Running(dir string) (pid int, running bool, err error) {
	pid, err = m.Read(dir)
	if err != nil {
		return 0, false, err
	}
	return pid, Alive(pid), nil
}

// ReadFile parses the pid held in the PID file at path.
func ReadFile(path string) (int, error) {
	content, err := fileutil.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || pid < 1 {
		return 0, fmt.Errorf("%s: %q: %w", path, content, ErrInvalidPID)
	}
	return pid, nil
}

// present reports whether a PID file exists at path for Remove. A failed
// check is logged and returned.
func (m *Manager) present(path string) (bool, error) {
	switch state, err := fileutil.Stat(path); state {
	case fileutil.Absent:
		return false, nil
	case fileutil.CheckError:
		m.log.Warn("pid file existence check failed", "path", path, "error", err)
		return false, fmt.Errorf("remove %s: %w", path, err)
	}
	return true, nil
}

// acquire takes the PID lock for path when locking is enabled and returns
// the matching release function.
func (m *Manager) acquire(ctx context.Context, path string) (func(), error) {
	if !m.lock {
		return func() {}, nil
	}
	fl, err := acquireFileLock(ctx, path+lockSuffix, m.retryInterval)
	if err != nil {
		return nil, err
	}
	return func() { releaseFileLock(m.log, fl) }, nil
}
