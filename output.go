package procenv

import "github.com/giantswarm/procenv/internal/colortable"

// OutputColor returns the sequence that switches to color c, optionally
// bold, as foreground or background. It panics for a color outside
// Black..White; use ColorCode to get an error instead.
func OutputColor(c Color, bold, background bool) string {
	return colortable.MustCode(background, bold, c)
}

// OutputBold returns the sequence that switches on bold text.
func OutputBold() string {
	return colortable.Bold
}

// OutputReverse returns the sequence that swaps foreground and background.
func OutputReverse() string {
	return colortable.Reverse
}

// ResetColor returns the sequence that restores default attributes.
func ResetColor() string {
	return colortable.Reset
}
