package fileutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Appender performs fire-and-forget appends. Append returns immediately and
// the write happens on its own goroutine; a failure is logged and kept for
// Wait, never reported to the caller of Append.
//
// Appends to the same path are not ordered relative to each other.
// Appender is safe for concurrent use. Create one with NewAppender.
type Appender struct {
	mu     sync.Mutex
	g      *errgroup.Group // appends scheduled since the last Wait
	mode   os.FileMode
	logger func() *slog.Logger
}

// NewAppender returns an Appender that creates missing files with mode
// (DefaultFileMode when zero). logger is called each time a failure is
// logged so that a replaced package logger takes effect; nil uses
// slog.Default.
func NewAppender(logger func() *slog.Logger, mode os.FileMode) *Appender {
	if logger == nil {
		logger = slog.Default
	}
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Appender{g: new(errgroup.Group), mode: mode, logger: logger}
}

// Append schedules content to be appended to path, creating the file if it
// does not exist. It does not block on the write.
func (a *Appender) Append(path, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.g.Go(func() error {
		if err := AppendFile(path, content, a.mode); err != nil {
			a.logger().Error("append failed", "path", path, "error", err)
			return err
		}
		return nil
	})
}

// Wait blocks until every append scheduled before the call has finished and
// returns the first failure among them. Appends scheduled after Wait starts
// belong to the next Wait.
func (a *Appender) Wait() error {
	a.mu.Lock()
	g := a.g
	a.g = new(errgroup.Group)
	a.mu.Unlock()

	return g.Wait()
}

// AppendFile appends content to path synchronously, creating the file with
// mode if it does not exist.
func AppendFile(path, content string, mode os.FileMode) (retErr error) {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, mode) //nolint:gosec // G304: paths are supplied by the host process
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
