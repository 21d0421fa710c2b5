// Package procenv provides an operating-system-independent view of the
// running process: environment lookup, PATH-style file search, elapsed time
// since start, terminal detection and SGR color codes for diagnostics.
//
// Platform differences live behind build-tagged files in internal/host, so
// callers such as compiler diagnostics or command dispatch never branch on
// the operating system.
//
// # Basic Usage
//
//	import "github.com/giantswarm/procenv"
//
//	if path, ok := procenv.LookPath("clang"); ok {
//	    fmt.Println("using", path)
//	}
//
//	if procenv.StandardErrHasColors() {
//	    fmt.Fprint(os.Stderr, procenv.OutputColor(procenv.Red, true, false))
//	    defer fmt.Fprint(os.Stderr, procenv.ResetColor())
//	}
//
//	fmt.Fprintf(os.Stderr, "done in %v\n", procenv.ElapsedTimeSinceStart())
//
// # Process-wide State
//
// The start-time reference and the color table are built once during
// package initialization and are read-only afterwards; every function here
// is safe for concurrent use. The package-level functions use a default
// Process over the real operating system. Tests construct their own with
// New and WithHost.
//
// # Absence Is Not an Error
//
// FindInEnvPath and GetEnv report a missing result with a false second
// value. An unset variable and a variable with no matching directory look
// the same to the caller.
package procenv
