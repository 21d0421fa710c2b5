//go:build procenv_notimer

package host

import "time"

// HasTimer reports whether this build has a usable time source.
//
// Builds tagged procenv_notimer target environments without a timer
// service. Every reading is the zero time, so elapsed durations are zero.
const HasTimer = false

func now() time.Time {
	return time.Time{}
}
