package procenv

import "github.com/giantswarm/procenv/internal/colortable"

// Sentinel errors for error inspection with errors.Is.
const (
	// ErrColorOutOfRange is returned by ColorCode when the color index is
	// outside Black..White. It indicates a caller bug.
	ErrColorOutOfRange = colortable.ErrColorOutOfRange
)
