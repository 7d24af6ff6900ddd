package app

import (
	"sync"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

// Lifecycle manages the game state machine:
//
//	Idle --start--> Running --end--> Ended --dismiss--> Idle
//
// Starting is also allowed while Running (restart, discarding history) and
// while Ended (play again straight from the statistics view).
type Lifecycle struct {
	mu     sync.RWMutex
	state  domain.GameState
	logger ports.Logger
}

// NewLifecycle creates a lifecycle in the Idle state.
func NewLifecycle(logger ports.Logger) *Lifecycle {
	return &Lifecycle{
		state:  domain.GameIdle,
		logger: logger,
	}
}

// State returns the current game state.
func (l *Lifecycle) State() domain.GameState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to move to newState and returns the previous state.
// Returns domain.ErrInvalidTransition, leaving the state unchanged, if the
// move is not allowed.
func (l *Lifecycle) TransitionTo(newState domain.GameState, reason string) (domain.GameState, error) {
	l.mu.Lock()
	oldState := l.state
	if !canTransition(oldState, newState) {
		l.mu.Unlock()
		return oldState, domain.ErrInvalidTransition
	}
	l.state = newState
	l.mu.Unlock()

	l.logger.Info("game state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return oldState, nil
}

func canTransition(from, to domain.GameState) bool {
	switch from {
	case domain.GameIdle:
		return to == domain.GameRunning
	case domain.GameRunning:
		return to == domain.GameRunning || to == domain.GameEnded
	case domain.GameEnded:
		return to == domain.GameIdle || to == domain.GameRunning
	default:
		return false
	}
}
