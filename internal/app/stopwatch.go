package app

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Stopwatch is the game's elapsed-time up-counter.
type Stopwatch struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	startedAt time.Time
	elapsed   time.Duration
	running   bool
}

// NewStopwatch creates a stopped stopwatch reading zero.
func NewStopwatch(clock clockwork.Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Start resets the reading to zero and starts counting.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startedAt = s.clock.Now()
	s.elapsed = 0
	s.running = true
}

// Stop freezes the current reading. The reading is kept until the next Start.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.elapsed = s.clock.Since(s.startedAt)
	s.running = false
}

// Elapsed returns the current reading.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return s.clock.Since(s.startedAt)
	}
	return s.elapsed
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
