package domain

import "errors"

// Domain errors represent error conditions in the scoreboard domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrBadTeam is returned for a team identifier that is neither white nor blue.
	ErrBadTeam = errors.New("bad team ID")

	// ErrBadAction is returned for a score action that is neither add nor sub.
	ErrBadAction = errors.New("bad action type")

	// ErrInvalidScore is returned for a score snapshot with negative values.
	ErrInvalidScore = errors.New("kicker: invalid score")

	// ErrGameNotRunning is returned when EndGame() is called without a running game.
	ErrGameNotRunning = errors.New("kicker: game not running")

	// ErrStatisticsNotShown is returned when statistics are dismissed while not displayed.
	ErrStatisticsNotShown = errors.New("kicker: statistics not shown")

	// ErrInvalidTransition is returned for a game state change the lifecycle forbids.
	ErrInvalidTransition = errors.New("kicker: invalid game state transition")

	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("kicker: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("kicker: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("kicker: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("kicker: invalid configuration")

	// ErrFeedClosed is returned when the live score feed closes the connection.
	ErrFeedClosed = errors.New("kicker: score feed closed")
)
