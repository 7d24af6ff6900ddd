package scoreboard

import (
	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
	"github.com/smartkickers/kicker/pkg/lifecycle"
)

// Domain types re-exported for embedders.
type (
	Team        = domain.TeamID
	ScoreAction = domain.ScoreAction
	Score       = domain.ScoreState
	Goal        = domain.Goal
	FinalScore  = domain.FinalScoreSnapshot
	GameState   = domain.GameState

	// View is a read-only copy of the scoreboard.
	View = app.View
)

// Teams and actions.
const (
	TeamWhite = domain.TeamWhite
	TeamBlue  = domain.TeamBlue

	ActionAdd = domain.ActionAdd
	ActionSub = domain.ActionSub
)

// Game states.
const (
	GameIdle    = domain.GameIdle
	GameRunning = domain.GameRunning
	GameEnded   = domain.GameEnded
)

// State is the run state of the scoreboard agent.
type State = lifecycle.State

// Agent run states.
const (
	StateStopped  = lifecycle.StateStopped
	StateStarting = lifecycle.StateStarting
	StateRunning  = lifecycle.StateRunning
	StateStopping = lifecycle.StateStopping
	StateCrashed  = lifecycle.StateCrashed
)

// Errors returned by the scoreboard.
var (
	ErrGameNotRunning     = domain.ErrGameNotRunning
	ErrStatisticsNotShown = domain.ErrStatisticsNotShown
	ErrAlreadyRunning     = domain.ErrAlreadyRunning
	ErrNotRunning         = domain.ErrNotRunning
	ErrShutdownTimeout    = domain.ErrShutdownTimeout
	ErrInvalidConfig      = domain.ErrInvalidConfig
)

// Ports that can be replaced through options.
type (
	// Logger is the interface for structured logging.
	Logger = ports.Logger

	// LogField is a structured log field.
	LogField = ports.Field

	// HTTPClient is the interface for making HTTP requests.
	// *http.Client satisfies this interface.
	HTTPClient = ports.HTTPClient

	// Notifier shows alerts to the operator.
	Notifier = ports.Notifier

	// ScoreFeed is a source of live score snapshots.
	ScoreFeed = ports.ScoreFeed

	// ScoreStream is one connection to a ScoreFeed.
	ScoreStream = ports.ScoreStream

	// TableAPI sends score corrections and resets to the table.
	TableAPI = ports.TableAPI
)
