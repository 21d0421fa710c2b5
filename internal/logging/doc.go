// Package logging holds the process-wide slog logger shared by the procenv
// packages. The root package re-exports SetLogger.
package logging
