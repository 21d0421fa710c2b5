package procenv

import (
	"fmt"

	"github.com/giantswarm/procenv/internal/colortable"
)

// Color is one of the eight base terminal colors.
//
// Color is a type alias so that the String and Valid methods of the
// underlying colortable type are part of the public API.
type Color = colortable.Color

// Base colors, in SGR order.
const (
	Black   = colortable.Black
	Red     = colortable.Red
	Green   = colortable.Green
	Yellow  = colortable.Yellow
	Blue    = colortable.Blue
	Magenta = colortable.Magenta
	Cyan    = colortable.Cyan
	White   = colortable.White
)

// ColorPolicy decides what FileDescriptorHasColors, StandardOutHasColors
// and StandardErrHasColors report. It does not change the Output* helpers,
// which always return their sequence; callers check HasColors first.
type ColorPolicy int

const (
	// ColorAuto reports color when the descriptor is a displayed terminal,
	// TERM names a color-capable terminal and NO_COLOR is unset.
	ColorAuto ColorPolicy = iota

	// ColorAlways reports color for every descriptor.
	ColorAlways

	// ColorNever reports no color for any descriptor.
	ColorNever
)

// IsValid reports whether p is a recognized policy.
func (p ColorPolicy) IsValid() bool {
	switch p {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the policy name.
func (p ColorPolicy) String() string {
	switch p {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorPolicy(%d)", int(p))
	}
}
