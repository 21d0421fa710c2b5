package procenv

// Default configuration values for New.
const (
	// DefaultPathListEnv is the variable LookPath searches.
	DefaultPathListEnv = "PATH"

	// DefaultColorPolicy enables color only on displayed, color-capable
	// terminals.
	DefaultColorPolicy = ColorAuto
)

// Environment variables consulted through the Host.
const (
	// EnvNoColor disables color under ColorAuto when set to any value.
	// See https://no-color.org.
	EnvNoColor = "NO_COLOR"

	// EnvTerm names the terminal type.
	EnvTerm = "TERM"

	// EnvColumns overrides the detected terminal width.
	EnvColumns = "COLUMNS"
)
