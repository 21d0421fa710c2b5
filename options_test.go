package procenv_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/giantswarm/procenv"
	"github.com/giantswarm/procenv/internal/host"
)

// panicMessage runs fn and returns what it panicked with, or "" if it
// returned normally.
func panicMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}

func TestOptionValidation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		build     func()
		wantPanic string
	}{
		"nil host": {
			build:     func() { procenv.WithHost(nil) },
			wantPanic: "procenv: host must not be nil",
		},
		"fake host": {
			build: func() { procenv.WithHost(host.NewFake(':', '/')) },
		},
		"empty path list variable": {
			build:     func() { procenv.WithPathListEnv("") },
			wantPanic: "procenv: path list variable must not be empty",
		},
		"LD_LIBRARY_PATH": {
			build: func() { procenv.WithPathListEnv("LD_LIBRARY_PATH") },
		},
		"unknown color policy": {
			build:     func() { procenv.WithColorPolicy(procenv.ColorPolicy(7)) },
			wantPanic: "procenv: invalid color policy 7",
		},
		"negative color policy": {
			build:     func() { procenv.WithColorPolicy(procenv.ColorPolicy(-1)) },
			wantPanic: "procenv: invalid color policy -1",
		},
		"color always": {
			build: func() { procenv.WithColorPolicy(procenv.ColorAlways) },
		},
		"nil logger": {
			build: func() { procenv.WithLogger(nil) },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := panicMessage(tc.build); got != tc.wantPanic {
				t.Errorf("panic = %q, want %q", got, tc.wantPanic)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	got := procenv.ApplyOptionsForTesting()

	if _, ok := got.Host.(host.OS); !ok {
		t.Errorf("default Host = %T, want host.OS", got.Host)
	}
	if got.Logger != nil {
		t.Error("default Logger should be nil (package logger)")
	}
	if got.PathListEnv != procenv.DefaultPathListEnv {
		t.Errorf("PathListEnv = %q, want %q", got.PathListEnv, procenv.DefaultPathListEnv)
	}
	if got.ColorPolicy != procenv.DefaultColorPolicy {
		t.Errorf("ColorPolicy = %v, want %v", got.ColorPolicy, procenv.DefaultColorPolicy)
	}
}

func TestOptionsApply(t *testing.T) {
	t.Parallel()

	fake := host.NewFake(';', '\\')
	logger := slog.New(slog.DiscardHandler)

	got := procenv.ApplyOptionsForTesting(
		procenv.WithHost(fake),
		procenv.WithLogger(logger),
		procenv.WithPathListEnv("TOOLPATH"),
		procenv.WithColorPolicy(procenv.ColorNever),
	)

	if got.Host != procenv.Host(fake) {
		t.Errorf("Host = %v, want the fake", got.Host)
	}
	if got.Logger != logger {
		t.Error("Logger not applied")
	}
	if got.PathListEnv != "TOOLPATH" {
		t.Errorf("PathListEnv = %q", got.PathListEnv)
	}
	if got.ColorPolicy != procenv.ColorNever {
		t.Errorf("ColorPolicy = %v", got.ColorPolicy)
	}
}
