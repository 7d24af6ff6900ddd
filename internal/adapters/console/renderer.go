package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/domain"
)

// Renderer prints scoreboard views.
type Renderer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints the view matching the game state: statistics once a game has
// ended, the gameplay view otherwise.
func (r *Renderer) Render(v app.View) {
	if v.State == domain.GameEnded && v.Final != nil {
		r.Statistics(v)
		return
	}
	r.Gameplay(v)
}

// Gameplay prints the live scores and clock.
func (r *Renderer) Gameplay(v app.View) {
	feed := "offline"
	if v.FeedConnected {
		feed = "live"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "[%s] blue %d : %d white   %s   feed %s\n",
		v.State, v.Score.BlueScore, v.Score.WhiteScore, domain.FormatElapsed(v.Elapsed), feed)
}

// Statistics prints the final score, the winner, the game duration, goals per
// team and the goal history of an ended game.
func (r *Renderer) Statistics(v app.View) {
	var final domain.FinalScoreSnapshot
	if v.Final != nil {
		final = *v.Final
	}

	var b strings.Builder
	b.WriteString("=== Game statistics ===\n")
	fmt.Fprintf(&b, "Final score: blue %d : %d white\n", final.Blue, final.White)
	if winner, ok := final.Winner(); ok {
		fmt.Fprintf(&b, "Winner: %s\n", winner)
	} else {
		b.WriteString("Winner: draw\n")
	}
	fmt.Fprintf(&b, "Duration: %s\n", domain.FormatElapsed(final.Duration))

	fmt.Fprintf(&b, "Goals recorded: blue %d, white %d\n", v.BlueGoals, v.WhiteGoals)
	writeHistory(&b, v.Goals)

	r.mu.Lock()
	defer r.mu.Unlock()
	io.WriteString(r.w, b.String())
}

// History prints the goal log, oldest first.
func (r *Renderer) History(goals []domain.Goal) {
	var b strings.Builder
	writeHistory(&b, goals)

	r.mu.Lock()
	defer r.mu.Unlock()
	io.WriteString(r.w, b.String())
}

func writeHistory(b *strings.Builder, goals []domain.Goal) {
	if len(goals) == 0 {
		b.WriteString("No goals yet\n")
		return
	}
	b.WriteString("Goal history:\n")
	for i, g := range goals {
		fmt.Fprintf(b, "%3d. %-5s %s\n", i+1, g.Team, g.Timestamp)
	}
}
