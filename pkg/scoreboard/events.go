package scoreboard

import (
	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/domain"
)

// StateChangeEvent reports a change of the agent run state.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// GameStateChangeEvent reports a game lifecycle change, with the scoreboard
// as it was right after the change.
type GameStateChangeEvent struct {
	Previous GameState
	Current  GameState
	Reason   string
	View     View
}

// ScoreChangeEvent reports a score snapshot from the table.
// Added and Removed are empty when the snapshot repeated the last score.
type ScoreChangeEvent struct {
	Score   Score
	Added   []Goal
	Removed []Goal
	View    View
}

// FeedStatusEvent reports the live feed connecting or dropping.
type FeedStatusEvent struct {
	Connected bool
	Err       error
}

// EventHandler receives scoreboard events. Calls are synchronous; handlers
// should return quickly. Embed BaseEventHandler to implement a subset.
type EventHandler interface {
	OnStateChange(StateChangeEvent)
	OnGameStateChange(GameStateChangeEvent)
	OnScoreChange(ScoreChangeEvent)
	OnFeedStatus(FeedStatusEvent)
}

// BaseEventHandler ignores all events.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent)         {}
func (BaseEventHandler) OnGameStateChange(GameStateChangeEvent) {}
func (BaseEventHandler) OnScoreChange(ScoreChangeEvent)         {}
func (BaseEventHandler) OnFeedStatus(FeedStatusEvent)           {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
	view    func() View
}

func (e *eventEmitterWrapper) OnStateChange(previous, current State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{Previous: previous, Current: current, Reason: reason})
}

func (e *eventEmitterWrapper) onGameStateChange(previous, current domain.GameState, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnGameStateChange(GameStateChangeEvent{
		Previous: previous,
		Current:  current,
		Reason:   reason,
		View:     e.view(),
	})
}

func (e *eventEmitterWrapper) onScoreChange(score domain.ScoreState, applied app.Applied) {
	if e.handler == nil {
		return
	}
	e.handler.OnScoreChange(ScoreChangeEvent{
		Score:   score,
		Added:   applied.Added,
		Removed: applied.Removed,
		View:    e.view(),
	})
}

func (e *eventEmitterWrapper) onFeedStatus(connected bool, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnFeedStatus(FeedStatusEvent{Connected: connected, Err: err})
}

// gameEmitter exposes the game events of the wrapper as an app.EventEmitter.
// The method names clash with lifecycle.EventEmitter, hence the second type.
type gameEmitter struct {
	*eventEmitterWrapper
}

func (g gameEmitter) OnStateChange(previous, current domain.GameState, reason string) {
	g.onGameStateChange(previous, current, reason)
}

func (g gameEmitter) OnScoreChange(score domain.ScoreState, applied app.Applied) {
	g.onScoreChange(score, applied)
}

func (g gameEmitter) OnFeedStatus(connected bool, err error) {
	g.onFeedStatus(connected, err)
}
