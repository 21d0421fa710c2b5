package procenv

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/giantswarm/procenv/internal/colortable"
	"github.com/giantswarm/procenv/internal/envpath"
	"github.com/giantswarm/procenv/internal/host"
	"github.com/giantswarm/procenv/internal/logging"
	"github.com/giantswarm/procenv/internal/startclock"
	"github.com/giantswarm/procenv/internal/terminal"
)

// Process is an OS-independent view of the running process. All methods are
// safe for concurrent use.
type Process struct {
	host     Host
	log      *slog.Logger // nil selects the package-level logger
	since    func() time.Duration
	resolver *envpath.Resolver
	pathEnv  string
	colors   ColorPolicy
}

// Usage is the time accounting returned by TimeUsage.
type Usage struct {
	// Elapsed is the wall-clock time since process start.
	Elapsed time.Duration
	// User is CPU time spent in user mode.
	User time.Duration
	// System is CPU time spent in the kernel on behalf of the process.
	System time.Duration
}

// New creates a Process. With no options it reads the real operating
// system and measures elapsed time from process start.
func New(opts ...Option) *Process {
	cfg := defaultProcessConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Process{
		host:     cfg.Host,
		log:      cfg.Logger,
		resolver: envpath.NewResolver(cfg.Host, cfg.Logger),
		pathEnv:  cfg.PathListEnv,
		colors:   cfg.ColorPolicy,
	}
	if _, ok := cfg.Host.(host.OS); ok {
		p.since = startclock.SinceStart
	} else {
		p.since = startclock.New(cfg.Host.Now).Since
	}
	return p
}

// std backs the package-level functions. Like the start-time reference it
// is built during package initialization and never replaced.
var std = New()

// Default returns the Process used by the package-level functions.
func Default() *Process {
	return std
}

func (p *Process) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return logging.Logger()
}

// GetEnv returns the value of the named environment variable and whether it
// is set.
func (p *Process) GetEnv(name string) (string, bool) {
	return p.host.LookupEnv(name)
}

// FindInEnvPath returns the first directory listed in the environment
// variable envName that contains fileName, joined with fileName. The
// variable is split on the platform list separator and empty entries are
// skipped. It reports false when the variable is unset or nothing matches.
func (p *Process) FindInEnvPath(envName, fileName string) (string, bool) {
	return envpath.Find(p.host, p.logger(), envName, fileName)
}

// FindAllInEnvPath returns every match FindInEnvPath would consider, in
// search order. Entries after the first are shadowed.
func (p *Process) FindAllInEnvPath(envName, fileName string) []string {
	return envpath.FindAll(p.host, envName, fileName)
}

// LookPath searches the configured path-list variable (PATH by default)
// for fileName. Results are cached per variable value; see PurgeLookPath.
func (p *Process) LookPath(fileName string) (string, bool) {
	path, found, _ := p.resolver.Find(context.Background(), p.pathEnv, fileName)
	return path, found
}

// LookPathContext is LookPath with cancellation. The error is non-nil only
// when ctx is done before a result is available.
func (p *Process) LookPathContext(ctx context.Context, fileName string) (string, bool, error) {
	return p.resolver.Find(ctx, p.pathEnv, fileName)
}

// PurgeLookPath forgets cached LookPath results, so files installed since
// are found.
func (p *Process) PurgeLookPath() {
	p.resolver.Purge()
}

// ElapsedTimeSinceStart returns the wall-clock time since process start. It
// never decreases and is zero on builds without a timer.
func (p *Process) ElapsedTimeSinceStart() time.Duration {
	return p.since()
}

// TimeUsage returns elapsed wall-clock time and the CPU time this process
// has consumed. On targets without CPU accounting User and System are zero.
func (p *Process) TimeUsage() (Usage, error) {
	u := Usage{Elapsed: p.since()}
	user, sys, err := host.CPUTimes()
	if err != nil {
		return u, err
	}
	u.User, u.System = user, sys
	return u, nil
}

// PID returns the process identifier.
func (p *Process) PID() int {
	return host.PID()
}

// PageSize returns the virtual memory page size in bytes.
func (p *Process) PageSize() int {
	return host.PageSize()
}

// ColorCode returns the SGR sequence for color c as foreground, or as
// background, optionally bold. It returns ErrColorOutOfRange, wrapped, for a
// color outside Black..White.
func (p *Process) ColorCode(background, bold bool, c Color) (string, error) {
	return colortable.Code(background, bold, c)
}

// FileDescriptorIsDisplayed reports whether fd is a terminal a user sees.
func (p *Process) FileDescriptorIsDisplayed(fd uintptr) bool {
	return terminal.IsDisplayed(fd)
}

// StandardInIsUserInput reports whether standard input is a terminal.
func (p *Process) StandardInIsUserInput() bool {
	return terminal.IsDisplayed(os.Stdin.Fd())
}

// StandardOutIsDisplayed reports whether standard output is a terminal.
func (p *Process) StandardOutIsDisplayed() bool {
	return terminal.IsDisplayed(os.Stdout.Fd())
}

// StandardErrIsDisplayed reports whether standard error is a terminal.
func (p *Process) StandardErrIsDisplayed() bool {
	return terminal.IsDisplayed(os.Stderr.Fd())
}

// FileDescriptorColumns returns the width of the terminal behind fd, or 0 if
// fd is not a terminal. COLUMNS overrides the detected width.
func (p *Process) FileDescriptorColumns(fd uintptr) int {
	columns, _ := p.host.LookupEnv(EnvColumns)
	return terminal.Columns(fd, columns)
}

// StandardOutColumns returns the width of the terminal on standard output.
func (p *Process) StandardOutColumns() int {
	return p.FileDescriptorColumns(os.Stdout.Fd())
}

// StandardErrColumns returns the width of the terminal on standard error.
func (p *Process) StandardErrColumns() int {
	return p.FileDescriptorColumns(os.Stderr.Fd())
}

// FileDescriptorHasColors reports whether color sequences written to fd
// will be rendered, according to the Process color policy.
func (p *Process) FileDescriptorHasColors(fd uintptr) bool {
	switch p.colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := p.host.LookupEnv(EnvNoColor); ok {
		p.logger().Debug("color disabled by environment", "env", EnvNoColor)
		return false
	}
	if !terminal.IsDisplayed(fd) {
		return false
	}
	termType, _ := p.host.LookupEnv(EnvTerm)
	return terminal.TermHasColors(termType)
}

// StandardOutHasColors reports whether standard output renders color.
func (p *Process) StandardOutHasColors() bool {
	return p.FileDescriptorHasColors(os.Stdout.Fd())
}

// StandardErrHasColors reports whether standard error renders color.
func (p *Process) StandardErrHasColors() bool {
	return p.FileDescriptorHasColors(os.Stderr.Fd())
}

// ColorNeedsFlush reports whether pending output must be flushed before a
// color change takes effect. Colors are always in-band escape sequences,
// so it is false.
func (p *Process) ColorNeedsFlush() bool {
	return false
}
