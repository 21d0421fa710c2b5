package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNonTerminalFile(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	if IsDisplayed(f.Fd()) {
		t.Error("IsDisplayed() = true for a regular file")
	}
	if got := Columns(f.Fd(), "120"); got != 0 {
		t.Errorf("Columns() = %d for a regular file, want 0", got)
	}
}

func TestTermHasColors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		term string
		want bool
	}{
		"empty":          {term: "", want: false},
		"dumb":           {term: "dumb", want: false},
		"xterm":          {term: "xterm", want: true},
		"xterm-256color": {term: "xterm-256color", want: true},
		"screen":         {term: "screen.xterm-new", want: true},
		"linux console":  {term: "linux", want: true},
		"upper case":     {term: "XTERM", want: true},
		"generic color":  {term: "foo-color", want: true},
		"unknown":        {term: "vt52", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := TermHasColors(tc.term); got != tc.want {
				t.Errorf("TermHasColors(%q) = %v, want %v", tc.term, got, tc.want)
			}
		})
	}
}
