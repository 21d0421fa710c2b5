package startclock

import (
	"sync"
	"testing"
	"time"

	"github.com/giantswarm/procenv/internal/host"
)

// stepSource returns base, then base+step, base+2*step and so on.
func stepSource(base time.Time, step time.Duration) Source {
	var (
		mu sync.Mutex
		n  int
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := base.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func TestClockSince(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := New(stepSource(base, time.Second))

	if !c.Reference().Equal(base) {
		t.Fatalf("Reference() = %v, want %v", c.Reference(), base)
	}
	if got := c.Since(); got != time.Second {
		t.Errorf("first Since() = %v, want 1s", got)
	}
	if got := c.Since(); got != 2*time.Second {
		t.Errorf("second Since() = %v, want 2s", got)
	}
}

func TestClockSinceNeverNegative(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := New(stepSource(base, -time.Second))

	if got := c.Since(); got != 0 {
		t.Errorf("Since() = %v for a clock stepping backwards, want 0", got)
	}
}

func TestClockWithoutTimer(t *testing.T) {
	t.Parallel()

	c := New(host.NewFake(0, 0).Now)

	if !c.Reference().IsZero() {
		t.Errorf("Reference() = %v, want zero time", c.Reference())
	}
	for range 3 {
		if got := c.Since(); got != 0 {
			t.Fatalf("Since() = %v, want 0", got)
		}
	}
}

func TestSinceStartMonotonic(t *testing.T) {
	t.Parallel()

	prev := SinceStart()
	for range 1000 {
		cur := SinceStart()
		if cur < prev {
			t.Fatalf("SinceStart went backwards: %v after %v", cur, prev)
		}
		prev = cur
	}
}

func TestStartIsStable(t *testing.T) {
	t.Parallel()

	first := Start()
	if got := Start(); !got.Equal(first) {
		t.Errorf("Start() changed from %v to %v", first, got)
	}
	if host.HasTimer && first.IsZero() {
		t.Error("Start() is zero on a build with a timer")
	}
}

func TestSinceStartConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if SinceStart() < 0 {
					t.Error("negative elapsed time")
					return
				}
			}
		}()
	}
	wg.Wait()
}
