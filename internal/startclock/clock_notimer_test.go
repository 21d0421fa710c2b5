//go:build procenv_notimer

package startclock

import "testing"

func TestSinceStartWithoutTimer(t *testing.T) {
	t.Parallel()

	if got := Start(); !got.IsZero() {
		t.Errorf("Start() = %v, want the zero time", got)
	}
	for range 3 {
		if got := SinceStart(); got != 0 {
			t.Fatalf("SinceStart() = %v, want 0", got)
		}
	}
}
