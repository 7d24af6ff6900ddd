package app

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStopwatch(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sw := NewStopwatch(clock)

	if sw.Running() || sw.Elapsed() != 0 {
		t.Fatalf("new stopwatch running=%v elapsed=%v, want stopped at 0", sw.Running(), sw.Elapsed())
	}

	sw.Start()
	clock.Advance(90 * time.Second)
	if got := sw.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() = %v, want 1m30s", got)
	}

	sw.Stop()
	clock.Advance(time.Minute)
	if got := sw.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() after Stop = %v, want frozen at 1m30s", got)
	}
	if sw.Running() {
		t.Error("Running() = true after Stop")
	}

	// Stop on a stopped watch keeps the reading.
	sw.Stop()
	if got := sw.Elapsed(); got != 90*time.Second {
		t.Errorf("Elapsed() after second Stop = %v", got)
	}

	sw.Start()
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after restart = %v, want 0", got)
	}
}
