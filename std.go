package procenv

import (
	"context"
	"time"
)

// The functions below forward to Default().

// GetEnv returns the value of the named environment variable and whether it
// is set.
func GetEnv(name string) (string, bool) { return std.GetEnv(name) }

// FindInEnvPath returns the first directory listed in envName containing
// fileName, joined with fileName. See Process.FindInEnvPath.
func FindInEnvPath(envName, fileName string) (string, bool) {
	return std.FindInEnvPath(envName, fileName)
}

// FindAllInEnvPath returns every match in envName in search order.
func FindAllInEnvPath(envName, fileName string) []string {
	return std.FindAllInEnvPath(envName, fileName)
}

// LookPath searches PATH for fileName, caching results.
func LookPath(fileName string) (string, bool) { return std.LookPath(fileName) }

// LookPathContext is LookPath with cancellation.
func LookPathContext(ctx context.Context, fileName string) (string, bool, error) {
	return std.LookPathContext(ctx, fileName)
}

// PurgeLookPath forgets cached LookPath results.
func PurgeLookPath() { std.PurgeLookPath() }

// ElapsedTimeSinceStart returns the wall-clock time since process start.
func ElapsedTimeSinceStart() time.Duration { return std.ElapsedTimeSinceStart() }

// TimeUsage returns elapsed wall-clock time and consumed CPU time.
func TimeUsage() (Usage, error) { return std.TimeUsage() }

// PID returns the process identifier.
func PID() int { return std.PID() }

// PageSize returns the virtual memory page size in bytes.
func PageSize() int { return std.PageSize() }

// ColorCode returns the SGR sequence for a color. See Process.ColorCode.
func ColorCode(background, bold bool, c Color) (string, error) {
	return std.ColorCode(background, bold, c)
}

// FileDescriptorIsDisplayed reports whether fd is a terminal a user sees.
func FileDescriptorIsDisplayed(fd uintptr) bool { return std.FileDescriptorIsDisplayed(fd) }

// StandardInIsUserInput reports whether standard input is a terminal.
func StandardInIsUserInput() bool { return std.StandardInIsUserInput() }

// StandardOutIsDisplayed reports whether standard output is a terminal.
func StandardOutIsDisplayed() bool { return std.StandardOutIsDisplayed() }

// StandardErrIsDisplayed reports whether standard error is a terminal.
func StandardErrIsDisplayed() bool { return std.StandardErrIsDisplayed() }

// FileDescriptorColumns returns the terminal width behind fd, or 0.
func FileDescriptorColumns(fd uintptr) int { return std.FileDescriptorColumns(fd) }

// StandardOutColumns returns the terminal width of standard output, or 0.
func StandardOutColumns() int { return std.StandardOutColumns() }

// StandardErrColumns returns the terminal width of standard error, or 0.
func StandardErrColumns() int { return std.StandardErrColumns() }

// FileDescriptorHasColors reports whether fd renders color sequences.
func FileDescriptorHasColors(fd uintptr) bool { return std.FileDescriptorHasColors(fd) }

// StandardOutHasColors reports whether standard output renders color.
func StandardOutHasColors() bool { return std.StandardOutHasColors() }

// StandardErrHasColors reports whether standard error renders color.
func StandardErrHasColors() bool { return std.StandardErrHasColors() }

// ColorNeedsFlush reports whether output must be flushed before a color
// change. It is always false.
func ColorNeedsFlush() bool { return std.ColorNeedsFlush() }
