package procenv

import (
	"log/slog"

	"github.com/giantswarm/procenv/internal/host"
)

// processConfig holds the settings a Process is built from.
type processConfig struct {
	Host        Host
	Logger      *slog.Logger
	PathListEnv string
	ColorPolicy ColorPolicy
}

// defaultProcessConfig returns a processConfig populated with all default
// values. Both New and test helpers start from it.
func defaultProcessConfig() processConfig {
	return processConfig{
		Host:        host.OS{},
		PathListEnv: DefaultPathListEnv,
		ColorPolicy: DefaultColorPolicy,
	}
}
