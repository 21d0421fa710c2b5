//go:build !procenv_notimer

package host

import "time"

// HasTimer reports whether this build has a usable time source.
const HasTimer = true

func now() time.Time {
	return time.Now()
}
