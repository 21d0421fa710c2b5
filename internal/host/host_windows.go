//go:build windows

package host

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

const (
	listSeparator = ';'
	separator     = '\\'
)

func lookupEnv(name string) (string, bool) {
	return windows.Getenv(name)
}

func exists(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	return err == nil && attrs != windows.INVALID_FILE_ATTRIBUTES
}

// PID returns the process identifier.
func PID() int {
	return int(windows.GetCurrentProcessId())
}

// PageSize returns the virtual memory page size in bytes.
func PageSize() int {
	return os.Getpagesize()
}

// CPUTimes returns the user and system CPU time consumed by this process.
func CPUTimes() (user, system time.Duration, err error) {
	var creation, exit, kernel, usr windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &usr); err != nil {
		return 0, 0, fmt.Errorf("GetProcessTimes: %w", err)
	}
	return filetimeDuration(usr), filetimeDuration(kernel), nil
}

// filetimeDuration converts a FILETIME interval, counted in 100ns ticks,
// to a Duration. Filetime.Nanoseconds is not used because it rebases onto
// the Unix epoch.
func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	return time.Duration(ticks * 100)
}
