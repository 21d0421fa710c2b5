package host

import (
	"sync"
	"time"
)

// Compile-time interface satisfaction check.
var _ Host = (*Fake)(nil)

// Fake is an in-memory Host for tests. The zero value has no variables,
// no files, POSIX separators and a clock stuck at the zero time.
type Fake struct {
	mu      sync.Mutex
	env     map[string]string
	files   map[string]struct{}
	probes  []string
	clock   func() time.Time
	listSep byte
	sep     byte
}

// NewFake returns a Fake using the given list and directory separators.
func NewFake(listSep, sep byte) *Fake {
	return &Fake{listSep: listSep, sep: sep}
}

// SetEnv sets a variable.
func (f *Fake) SetEnv(name, value string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.env == nil {
		f.env = make(map[string]string)
	}
	f.env[name] = value
	return f
}

// AddFile marks path as existing.
func (f *Fake) AddFile(path string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.files == nil {
		f.files = make(map[string]struct{})
	}
	f.files[path] = struct{}{}
	return f
}

// SetClock installs the function returned by Now.
func (f *Fake) SetClock(fn func() time.Time) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = fn
	return f
}

// Probes returns every path passed to Exists, in call order.
func (f *Fake) Probes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.probes...)
}

// LookupEnv implements Host.
func (f *Fake) LookupEnv(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.env[name]
	return v, ok
}

// Exists implements Host and records the probe.
func (f *Fake) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes = append(f.probes, path)
	_, ok := f.files[path]
	return ok
}

// Now implements Host.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	fn := f.clock
	f.mu.Unlock()
	if fn == nil {
		return time.Time{}
	}
	return fn()
}

// ListSeparator implements Host.
func (f *Fake) ListSeparator() byte {
	if f.listSep == 0 {
		return ':'
	}
	return f.listSep
}

// Separator implements Host.
func (f *Fake) Separator() byte {
	if f.sep == 0 {
		return '/'
	}
	return f.sep
}
