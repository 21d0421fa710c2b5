// Package colortable holds the SGR escape sequences for the eight base
// terminal colors as foreground or background, normal or bold.
//
// The 32 sequences are generated once at package initialization from the
// template ESC "[0;" [ "1;" ] ("3"|"4") <digit> "m" and served by index,
// so lookups never format strings.
package colortable
