package procfiles

import (
	"log/slog"

	"github.com/giantswarm/procfiles/internal/core"
)

// SetLogger replaces the package-level logger used by procfiles, including
// the logger that reports failed background appends. The provided logger is
// used as-is; procfiles adds no attributes to it.
//
// If l is nil, the logger resets to slog.Default() with a
// "component"="procfiles" attribute, re-derived on the next use. Call
// SetLogger(nil) after slog.SetDefault() to pick up the change.
//
// SetLogger is safe to call concurrently with other procfiles operations. A
// PIDFile captures the logger when it is created, so set the logger before
// calling NewPIDFile.
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
