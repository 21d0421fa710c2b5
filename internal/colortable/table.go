package colortable

import (
	"fmt"

	"github.com/giantswarm/procenv/internal/sentinel"
)

// ErrColorOutOfRange is returned by Code for an index outside Black..White.
const ErrColorOutOfRange = sentinel.Error("color index out of range")

// Color is one of the eight base terminal colors.
type Color int

// Base colors in SGR order.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// NumColors is the number of base colors.
const NumColors = 8

// MaxCodeLen bounds every table entry, counting a trailing NUL as the
// C-string tables these sequences originate from do.
const MaxCodeLen = 10

// Attribute sequences that sit outside the table.
const (
	Reset   = "\x1b[0m"
	Bold    = "\x1b[1m"
	Reverse = "\x1b[7m"
)

var names = [NumColors]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return names[c]
}

// Valid reports whether c is within Black..White.
func (c Color) Valid() bool {
	return c >= Black && c <= White
}

// table is indexed [background][bold][color]. It is filled once during
// package initialization and never written again, so concurrent readers
// need no synchronization.
var table = build()

func build() (t [2][2][NumColors]string) {
	for plane, base := range [2]string{"3", "4"} {
		for weight, flag := range [2]string{"", "1;"} {
			for c := range NumColors {
				t[plane][weight][c] = "\x1b[0;" + flag + base + string(rune('0'+c)) + "m"
			}
		}
	}
	return t
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Code returns the SGR sequence selecting color c as foreground, or as
// background when background is set, optionally bold. It fails with
// ErrColorOutOfRange when c is not a base color.
func Code(background, bold bool, c Color) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("color %d: %w", int(c), ErrColorOutOfRange)
	}
	return table[b2i(background)][b2i(bold)][c], nil
}

// MustCode is like Code but panics on an invalid color. Use it with
// constant colors.
func MustCode(background, bold bool, c Color) string {
	code, err := Code(background, bold, c)
	if err != nil {
		panic("colortable: " + err.Error())
	}
	return code
}

// Entries returns a copy of all table entries in [background][bold][color]
// order.
func Entries() []string {
	out := make([]string, 0, 2*2*NumColors)
	for _, plane := range table {
		for _, weight := range plane {
			out = append(out, weight[:]...)
		}
	}
	return out
}
