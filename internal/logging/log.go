package logging

import (
	"log/slog"
	"sync/atomic"
)

// component tags every record from the default logger.
const component = "procenv"

var (
	// installed is the logger given to SetLogger, if any.
	installed atomic.Pointer[slog.Logger]
	// derived is slog.Default() tagged with component, built on first use.
	derived atomic.Pointer[slog.Logger]
)

// Logger returns the installed logger, or else slog.Default() tagged with
// component=procenv. The tagged default is derived once and then reused,
// so a later slog.SetDefault only takes effect after SetLogger(nil).
// Logger never returns nil.
func Logger() *slog.Logger {
	if l := installed.Load(); l != nil {
		return l
	}
	if l := derived.Load(); l != nil {
		return l
	}
	l := slog.Default().With("component", component)
	// A concurrent caller may win the swap; its logger is equivalent.
	derived.CompareAndSwap(nil, l)
	return l
}

// SetLogger installs l for all procenv records. SetLogger(nil) goes back to
// the tagged slog.Default(), re-read on the next Logger call.
func SetLogger(l *slog.Logger) {
	installed.Store(l)
	derived.Store(nil)
}
