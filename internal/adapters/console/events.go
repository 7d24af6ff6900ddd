package console

import (
	"fmt"

	"github.com/smartkickers/kicker/pkg/scoreboard"
)

// Events prints scoreboard events as they happen.
type Events struct {
	renderer *Renderer
}

// NewEvents creates an event printer writing through renderer.
func NewEvents(renderer *Renderer) *Events {
	return &Events{renderer: renderer}
}

// OnStateChange reports the feed agent crashing.
func (e *Events) OnStateChange(ev scoreboard.StateChangeEvent) {
	if ev.Current != scoreboard.StateCrashed {
		return
	}
	e.println(fmt.Sprintf("* scoreboard stopped: %s", ev.Reason))
}

// OnGameStateChange prints the view for the new game state.
func (e *Events) OnGameStateChange(ev scoreboard.GameStateChangeEvent) {
	e.renderer.Render(ev.View)
}

// OnScoreChange prints the gameplay view when the goal log changed.
func (e *Events) OnScoreChange(ev scoreboard.ScoreChangeEvent) {
	if len(ev.Added) == 0 && len(ev.Removed) == 0 {
		return
	}
	e.renderer.Gameplay(ev.View)
}

// OnFeedStatus prints feed connectivity changes.
func (e *Events) OnFeedStatus(ev scoreboard.FeedStatusEvent) {
	switch {
	case ev.Connected:
		e.println("* score feed connected")
	case ev.Err != nil:
		e.println(fmt.Sprintf("* score feed disconnected: %v", ev.Err))
	default:
		e.println("* score feed disconnected")
	}
}

func (e *Events) println(s string) {
	e.renderer.mu.Lock()
	defer e.renderer.mu.Unlock()
	fmt.Fprintln(e.renderer.w, s)
}

var _ scoreboard.EventHandler = (*Events)(nil)
