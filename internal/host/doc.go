// Package host abstracts the operating system services procenv consumes:
// environment lookup, file existence, the wall clock and the platform path
// separators.
//
// OS is the real implementation. Its behavior is chosen at build time by
// file-level build constraints (host_unix.go, host_windows.go,
// host_other.go), so callers never branch on runtime.GOOS. Builds tagged
// procenv_notimer replace the clock with one that always reads zero; their
// tests run with
//
//	go test -tags procenv_notimer ./...
//
// Fake is an in-memory Host used by tests across the module.
package host
