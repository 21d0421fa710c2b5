//go:build !unix && !windows

package host

import (
	"os"
	"time"
)

// Targets such as plan9, js and wasip1 fall back to the os package
// constants and report no CPU accounting.
const (
	listSeparator = byte(os.PathListSeparator)
	separator     = byte(os.PathSeparator)
)

func lookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// PID returns the process identifier.
func PID() int {
	return os.Getpid()
}

// PageSize returns the virtual memory page size in bytes.
func PageSize() int {
	return os.Getpagesize()
}

// CPUTimes always reports zero on this target.
func CPUTimes() (user, system time.Duration, err error) {
	return 0, 0, nil
}
