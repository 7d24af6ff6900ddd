package domain

// GameState is the UI-level phase of a game.
type GameState int

const (
	// GameIdle means no game has started, or statistics were dismissed.
	GameIdle GameState = iota
	// GameRunning means the clock is running and goals are being logged.
	GameRunning
	// GameEnded means statistics are displayed and the clock is stopped.
	GameEnded
)

// String returns a human-readable representation of the state.
func (s GameState) String() string {
	switch s {
	case GameIdle:
		return "Idle"
	case GameRunning:
		return "Running"
	case GameEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
