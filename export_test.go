package procenv

import "log/slog"

// ConfigSnapshot holds a copy of processConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures without accessing internals.
type ConfigSnapshot struct {
	Host        Host
	Logger      *slog.Logger
	PathListEnv string
	ColorPolicy ColorPolicy
}

// ApplyOptionsForTesting creates a default processConfig, applies the given
// options, and returns a snapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultProcessConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return ConfigSnapshot{
		Host:        cfg.Host,
		Logger:      cfg.Logger,
		PathListEnv: cfg.PathListEnv,
		ColorPolicy: cfg.ColorPolicy,
	}
}
