package app

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

// AgentConfig contains configuration for the feed loop.
type AgentConfig struct {
	// Reconnect re-dials the feed after a failure or disconnect.
	// When false, Run returns the first feed error.
	Reconnect bool

	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// Agent pumps live feed snapshots into the synchronizer and keeps the feed
// connected.
type Agent struct {
	config AgentConfig
	feed   ports.ScoreFeed
	sync   *Synchronizer
	clock  clockwork.Clock
	logger ports.Logger
}

// NewAgent creates a new agent with the given dependencies.
func NewAgent(
	config AgentConfig,
	feed ports.ScoreFeed,
	sync *Synchronizer,
	clock clockwork.Clock,
	logger ports.Logger,
) *Agent {
	return &Agent{
		config: config,
		feed:   feed,
		sync:   sync,
		clock:  clock,
		logger: logger,
	}
}

// Run connects to the feed and applies every snapshot in arrival order.
// It returns when the context is canceled, or on the first feed error if
// reconnecting is disabled.
func (a *Agent) Run(ctx context.Context) error {
	backoff := newBackoff(a.clock, a.config.BackoffInitial, a.config.BackoffMax)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		stream, err := a.feed.Connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Warn("feed connect failed",
				ports.Err(err),
				ports.Duration("retry_in", backoff.Current()),
			)
			a.sync.SetFeedStatus(false, err)
			if !a.config.Reconnect {
				return err
			}
			if err := backoff.Sleep(ctx); err != nil {
				return err
			}
			continue
		}

		backoff.Reset()
		a.logger.Info("feed connected")
		a.sync.SetFeedStatus(true, nil)

		err = a.consume(ctx, stream)
		if cerr := stream.Close(); cerr != nil {
			a.logger.Debug("feed close", ports.Err(cerr))
		}
		if ctx.Err() != nil {
			a.sync.SetFeedStatus(false, nil)
			return ctx.Err()
		}

		a.logger.Warn("feed disconnected",
			ports.Err(err),
			ports.Duration("retry_in", backoff.Current()),
		)
		a.sync.SetFeedStatus(false, err)
		if !a.config.Reconnect {
			return err
		}
		if err := backoff.Sleep(ctx); err != nil {
			return err
		}
	}
}

// consume applies snapshots until the stream fails.
// Malformed snapshots are logged and skipped.
func (a *Agent) consume(ctx context.Context, stream ports.ScoreStream) error {
	for {
		snap, err := stream.Next(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidScore) {
				a.logger.Warn("skipping invalid snapshot", ports.Err(err))
				continue
			}
			return err
		}

		if _, err := a.sync.ApplySnapshot(snap); err != nil {
			a.logger.Warn("snapshot rejected", ports.Err(err))
		}
	}
}
