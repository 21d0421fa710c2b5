package terminal

import (
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/giantswarm/procenv/internal/logging"
)

// IsDisplayed reports whether fd refers to a terminal a user is looking at,
// including Cygwin and MSYS pseudo terminals on Windows.
func IsDisplayed(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Columns returns the width of the terminal behind fd, or 0 when fd is not
// a terminal or its size cannot be read. A positive columnsEnv (the value
// of COLUMNS) takes priority when fd is displayed.
func Columns(fd uintptr, columnsEnv string) int {
	if !IsDisplayed(fd) {
		return 0
	}
	if n, err := strconv.Atoi(strings.TrimSpace(columnsEnv)); err == nil && n > 0 {
		return n
	}
	width, _, err := term.GetSize(int(fd))
	if err != nil {
		logging.Logger().Debug("terminal size unavailable", "fd", fd, "err", err)
		return 0
	}
	return width
}

// colorTerms are TERM values, or prefixes of them, known to understand SGR
// color sequences.
var colorTerms = []string{
	"ansi",
	"cygwin",
	"linux",
	"screen",
	"xterm",
	"vt100",
	"rxvt",
	"tmux",
	"alacritty",
	"kitty",
	"wezterm",
}

// TermHasColors reports whether the terminal type named by the TERM
// variable renders color escape sequences.
func TermHasColors(termEnv string) bool {
	termEnv = strings.ToLower(strings.TrimSpace(termEnv))
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	if strings.Contains(termEnv, "color") {
		return true
	}
	for _, prefix := range colorTerms {
		if strings.HasPrefix(termEnv, prefix) {
			return true
		}
	}
	return false
}
