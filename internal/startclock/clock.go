package startclock

import (
	"time"

	"github.com/giantswarm/procenv/internal/host"
)

// Source returns the current time.
type Source func() time.Time

// Clock measures time elapsed since a fixed reference reading.
// A Clock is immutable and safe for concurrent use.
type Clock struct {
	now Source
	ref time.Time
}

// New reads now once and returns a Clock anchored at that reading.
func New(now Source) Clock {
	return Clock{now: now, ref: now()}
}

// Reference returns the reading the Clock is anchored at.
func (c Clock) Reference() time.Time {
	return c.ref
}

// Since returns the time elapsed since the reference. It never goes
// negative; a source without a timer yields 0.
func (c Clock) Since() time.Duration {
	d := c.now().Sub(c.ref)
	if d < 0 {
		return 0
	}
	return d
}

// process is anchored during package initialization, which the Go runtime
// runs once, on a single goroutine, before main and before any importer's
// init. It is written only here and read-only afterwards.
var process = New(host.OS{}.Now)

// SinceStart returns the wall-clock time elapsed since this package was
// initialized, which is as close to process start as Go allows.
func SinceStart() time.Duration {
	return process.Since()
}

// Start returns the process reference time.
func Start() time.Time {
	return process.ref
}
