package ports

import (
	"context"

	"github.com/smartkickers/kicker/internal/domain"
)

// ScoreFeed opens connections to the table's live score feed.
type ScoreFeed interface {
	// Connect dials the feed and performs the opening handshake.
	// The returned stream is owned by the caller and must be closed.
	Connect(ctx context.Context) (ScoreStream, error)
}

// ScoreStream delivers full score snapshots from a single feed connection,
// in the order the server pushed them.
type ScoreStream interface {
	// Next blocks until the next snapshot arrives.
	// Returns domain.ErrFeedClosed when the server closes the connection,
	// a wrapped domain.ErrInvalidScore for an undecodable or negative
	// snapshot (the stream stays usable), or another error for a broken
	// connection.
	Next(ctx context.Context) (domain.ScoreState, error)

	// Close releases the connection.
	Close() error
}
