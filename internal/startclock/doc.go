// Package startclock reports wall-clock time elapsed since process start.
//
// The reference reading is taken by package-level variable initialization,
// not by the first caller, so every subsystem measures from the same point
// no matter which of them asks first. Nothing re-reads it during shutdown.
package startclock
