package host

import "time"

// Host is the set of OS facilities procenv consumes. Every method must be
// safe for concurrent use.
type Host interface {
	// LookupEnv returns the value of the named environment variable and
	// whether it is set. A variable set to "" is present.
	LookupEnv(name string) (string, bool)

	// Exists reports whether path names an existing file or directory.
	Exists(path string) bool

	// Now returns the current time. On builds without a timer it returns
	// the zero time.Time.
	Now() time.Time

	// ListSeparator is the byte joining entries of a path-list variable
	// such as PATH.
	ListSeparator() byte

	// Separator is the directory separator used when joining paths.
	Separator() byte
}

// Compile-time interface satisfaction check.
var _ Host = OS{}

// OS is the Host backed by the running operating system. The build target
// selects its implementation; it has no state.
type OS struct{}

// LookupEnv implements Host.
func (OS) LookupEnv(name string) (string, bool) {
	return lookupEnv(name)
}

// Exists implements Host.
func (OS) Exists(path string) bool {
	return exists(path)
}

// Now implements Host.
func (OS) Now() time.Time {
	return now()
}

// ListSeparator implements Host.
func (OS) ListSeparator() byte {
	return listSeparator
}

// Separator implements Host.
func (OS) Separator() byte {
	return separator
}
