package procenv

import (
	"fmt"
	"log/slog"
)

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("procenv: %s must not be empty", name))
	}
}

// Option configures a Process during construction via New.
//
// Options panic on invalid input. Option values are almost always
// constants, so a bad one is a programmer error and fails at construction.
type Option func(*processConfig)

// WithHost runs the Process against h instead of the operating system.
// Elapsed time is then measured from the moment New is called, using
// h.Now.
//
// Panics if h is nil.
func WithHost(h Host) Option {
	if h == nil {
		panic("procenv: host must not be nil")
	}
	return func(c *processConfig) {
		c.Host = h
	}
}

// WithLogger sets the logger used by the Process. A nil logger selects the
// package-level logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(c *processConfig) {
		c.Logger = l
	}
}

// WithPathListEnv sets the variable LookPath searches.
//
// Default: "PATH".
//
// Panics if name is empty.
func WithPathListEnv(name string) Option {
	requireNonEmpty("path list variable", name)
	return func(c *processConfig) {
		c.PathListEnv = name
	}
}

// WithColorPolicy sets the policy behind the *HasColors methods.
//
// Default: ColorAuto.
//
// Panics if p is not a recognized policy.
func WithColorPolicy(p ColorPolicy) Option {
	if !p.IsValid() {
		panic(fmt.Sprintf("procenv: invalid color policy %d", int(p)))
	}
	return func(c *processConfig) {
		c.ColorPolicy = p
	}
}
