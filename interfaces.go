package procenv

import "github.com/giantswarm/procenv/internal/host"

// Host is the set of operating system services a Process consumes:
//
//   - LookupEnv(name) (string, bool) reads an environment variable.
//   - Exists(path) bool reports whether a file or directory exists.
//   - Now() time.Time reads the wall clock.
//   - ListSeparator() byte is the separator of path-list variables.
//   - Separator() byte is the directory separator.
//
// Implementations must be safe for concurrent use. The default Process uses
// the running operating system; pass another Host with WithHost to run the
// same logic against a fake environment.
type Host = host.Host
