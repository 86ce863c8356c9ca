package core

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the logger installed through SetLogger. nil means "use the
// cached default".
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches slog.Default() with the procfiles component attribute
// so Logger does not allocate on every call. SetLogger(nil) clears it, which
// is how callers pick up a later slog.SetDefault.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger. It never returns nil and
// is safe to call from multiple goroutines, including the goroutines that
// run background appends.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	// Lost the race: prefer the winner, but never return nil if a
	// concurrent SetLogger cleared it in between.
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "procfiles")
}

// SetLogger replaces the package-level logger. A nil l restores the default,
// re-derived from slog.Default() on the next Logger call.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
