package procenv

import (
	"log/slog"

	"github.com/giantswarm/procenv/internal/logging"
)

// SetLogger replaces the package-level logger used by procenv. The logger
// should already carry any attributes the application wants; procenv adds
// none.
//
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute, re-derived on the next use. Call SetLogger(nil) after
// slog.SetDefault() to pick up the change.
//
// SetLogger is safe to call concurrently with other procenv functions.
// A Process created with WithLogger keeps its own logger.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
