package ports

import (
	"context"

	"github.com/smartkickers/kicker/internal/domain"
)

// TableAPI issues score mutations against the table's REST API.
// Neither call changes local state; the resulting score arrives via the feed.
type TableAPI interface {
	// UpdateGoal adds or subtracts one goal for team on the server.
	UpdateGoal(ctx context.Context, team domain.TeamID, action domain.ScoreAction) error

	// ResetGame resets the server-side score to 0:0.
	// An error reported by the server is returned with its message verbatim.
	ResetGame(ctx context.Context) error
}

// Notifier shows short messages to the table operator.
// Notify is synchronous: it returns once the message has been presented.
type Notifier interface {
	Notify(msg string)
}
