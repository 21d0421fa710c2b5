//go:build unix

package host

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

const (
	listSeparator = ':'
	separator     = '/'
)

func lookupEnv(name string) (string, bool) {
	return unix.Getenv(name)
}

// exists follows symlinks, so a dangling link reports false.
func exists(path string) bool {
	var st unix.Stat_t
	return unix.Stat(path, &st) == nil
}

// PID returns the process identifier.
func PID() int {
	return unix.Getpid()
}

// PageSize returns the virtual memory page size in bytes.
func PageSize() int {
	return unix.Getpagesize()
}

// CPUTimes returns the user and system CPU time consumed by this process.
func CPUTimes() (user, system time.Duration, err error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, fmt.Errorf("getrusage: %w", err)
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), nil
}
