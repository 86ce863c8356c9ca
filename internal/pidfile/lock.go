package pidfile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
)

// DefaultLockRetryInterval is the interval between attempts to acquire the
// PID lock file.
const DefaultLockRetryInterval = 50 * time.Millisecond

// lockSuffix is appended to the PID file path to name its lock file.
const lockSuffix = ".lock"

// acquireFileLock takes an exclusive lock on lockPath, retrying every
// interval until it succeeds or ctx is done.
func acquireFileLock(ctx context.Context, lockPath string, interval time.Duration) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, interval)
	if err != nil {
		return nil, fmt.Errorf("acquiring pid lock %s: %w", lockPath, err)
	}

	if !locked {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("acquiring pid lock %s: %w", lockPath, ctx.Err())
		}
		return nil, fmt.Errorf("acquiring pid lock %s: lock not acquired", lockPath)
	}

	return fl, nil
}

// releaseFileLock unlocks and closes fl. The lock file stays on disk:
// removing it could invalidate a lock another process has just taken on the
// same inode.
func releaseFileLock(logger *slog.Logger, fl *flock.Flock) {
	if fl == nil {
		return
	}
	if err := fl.Close(); err != nil {
		logger.Debug("failed to release pid lock", "path", fl.Path(), "error", err)
	}
}
