// Package sentinel defines the constant error type behind procenv's
// exported errors, such as ErrColorOutOfRange.
package sentinel
