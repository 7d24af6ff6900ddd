package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/smartkickers/kicker/pkg/log"
)

type recordingEmitter struct {
	transitions [][2]State
	reasons     []string
}

func (r *recordingEmitter) OnStateChange(previous, current State, reason string) {
	r.transitions = append(r.transitions, [2]State{previous, current})
	r.reasons = append(r.reasons, reason)
}

func TestManager_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		path    []State
		next    State
		wantErr error
	}{
		{"stopped to starting", nil, StateStarting, nil},
		{"stopped to running", nil, StateRunning, ErrNotRunning},
		{"starting to running", []State{StateStarting}, StateRunning, nil},
		{"running to starting", []State{StateStarting, StateRunning}, StateStarting, ErrAlreadyRunning},
		{"running to crashed", []State{StateStarting, StateRunning}, StateCrashed, nil},
		{"crashed to stopping", []State{StateStarting, StateCrashed}, StateStopping, nil},
		{"crashed to running", []State{StateStarting, StateCrashed}, StateRunning, ErrNotRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(clockwork.NewFakeClock(), log.NewNoopLogger(), nil)
			for _, s := range tt.path {
				if err := m.TransitionTo(s, "setup"); err != nil {
					t.Fatalf("setup transition to %s: %v", s, err)
				}
			}
			before := m.State()

			err := m.TransitionTo(tt.next, "test")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TransitionTo(%s) error = %v, want %v", tt.next, err, tt.wantErr)
			}
			if err != nil && m.State() != before {
				t.Errorf("state changed to %s on invalid transition", m.State())
			}
			if err == nil && m.State() != tt.next {
				t.Errorf("State() = %s, want %s", m.State(), tt.next)
			}
		})
	}
}

func TestManager_EmitsEvents(t *testing.T) {
	em := &recordingEmitter{}
	m := NewManager(clockwork.NewFakeClock(), log.NewNoopLogger(), em)

	_ = m.TransitionTo(StateStarting, "start")
	_ = m.TransitionTo(StateRunning, "running")
	_ = m.TransitionTo(StateStarting, "invalid")

	if len(em.transitions) != 2 {
		t.Fatalf("transitions = %v, want 2", em.transitions)
	}
	if em.transitions[1] != [2]State{StateStarting, StateRunning} {
		t.Errorf("second transition = %v", em.transitions[1])
	}
	if em.reasons[1] != "running" {
		t.Errorf("second reason = %q, want running", em.reasons[1])
	}
}

func TestManager_CanStartStop(t *testing.T) {
	m := NewManager(clockwork.NewFakeClock(), log.NewNoopLogger(), nil)
	if !m.CanStart() || m.CanStop() {
		t.Fatal("stopped manager should only be startable")
	}
	_ = m.TransitionTo(StateStarting, "start")
	if m.CanStart() || !m.CanStop() {
		t.Fatal("starting manager should only be stoppable")
	}
	_ = m.TransitionTo(StateRunning, "running")
	_ = m.TransitionTo(StateCrashed, "feed lost")
	if !m.CanStart() || !m.CanStop() {
		t.Fatal("crashed manager should be both startable and stoppable")
	}
}

func TestManager_WaitWithTimeout(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(clock, log.NewNoopLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	m.SetCancel(cancel)
	m.AddWorker()
	go func() {
		defer m.WorkerDone()
		<-ctx.Done()
	}()

	m.Cancel()
	if err := m.WaitWithTimeout(time.Second); err != nil {
		t.Errorf("WaitWithTimeout() error = %v", err)
	}
}

func TestManager_WaitWithTimeoutExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewManager(clock, log.NewNoopLogger(), nil)
	m.AddWorker()
	defer m.WorkerDone()

	errCh := make(chan error, 1)
	go func() { errCh <- m.WaitWithTimeout(time.Second) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("waiter never blocked: %v", err)
	}
	clock.Advance(time.Second)

	if err := <-errCh; !errors.Is(err, ErrShutdownTimeout) {
		t.Errorf("WaitWithTimeout() error = %v, want ErrShutdownTimeout", err)
	}
}
