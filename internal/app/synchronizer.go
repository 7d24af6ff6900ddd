package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

// GameStartedMessage is shown to the operator when a game starts.
const GameStartedMessage = "Game started"

// EventEmitter receives scoreboard changes. Calls are made synchronously after
// the synchronizer has released its lock, so handlers may read View().
type EventEmitter interface {
	OnStateChange(previous, current domain.GameState, reason string)
	OnScoreChange(score domain.ScoreState, applied Applied)
	OnFeedStatus(connected bool, err error)
}

// Applied lists the goal log changes caused by one score snapshot.
type Applied struct {
	Added   []domain.Goal
	Removed []domain.Goal
}

// Empty reports whether the snapshot left the goal log untouched.
func (a Applied) Empty() bool {
	return len(a.Added) == 0 && len(a.Removed) == 0
}

// View is a read-only copy of the scoreboard for presenters.
type View struct {
	State         domain.GameState
	GameID        uuid.UUID
	Score         domain.ScoreState
	Final         *domain.FinalScoreSnapshot
	Goals         []domain.Goal
	BlueGoals     int
	WhiteGoals    int
	LogVersion    uint64
	Elapsed       time.Duration
	ClockRunning  bool
	FeedConnected bool
}

// Synchronizer keeps the goal log consistent with the score pushed by the
// table and owns the game actions. All state sits behind one mutex, so every
// snapshot and every action is applied as a single serialized step.
type Synchronizer struct {
	mu            sync.Mutex
	score         domain.ScoreState
	goals         domain.GoalLog
	final         *domain.FinalScoreSnapshot
	gameID        uuid.UUID
	feedConnected bool

	lifecycle *Lifecycle
	stopwatch *Stopwatch
	clock     clockwork.Clock
	api       ports.TableAPI
	notifier  ports.Notifier
	logger    ports.Logger
	emitter   EventEmitter
}

// NewSynchronizer creates a synchronizer with zero scores and an empty log.
// emitter may be nil.
func NewSynchronizer(
	api ports.TableAPI,
	notifier ports.Notifier,
	clock clockwork.Clock,
	logger ports.Logger,
	emitter EventEmitter,
) *Synchronizer {
	return &Synchronizer{
		lifecycle: NewLifecycle(logger),
		stopwatch: NewStopwatch(clock),
		clock:     clock,
		api:       api,
		notifier:  notifier,
		logger:    logger,
		emitter:   emitter,
	}
}

// ApplySnapshot replaces the score with next and updates the goal log from
// the difference to the previous score, blue first, then white:
// an increase appends one goal for that team stamped with the elapsed time,
// a decrease removes the most recent goal whichever team scored it.
func (s *Synchronizer) ApplySnapshot(next domain.ScoreState) (Applied, error) {
	if err := next.Validate(); err != nil {
		return Applied{}, err
	}

	s.mu.Lock()
	prev := s.score
	s.score = next

	var applied Applied
	for _, tc := range domain.Diff(prev, next) {
		switch tc.Change {
		case domain.Increase:
			g := domain.NewGoal(tc.Team, s.stopwatch.Elapsed())
			s.goals = s.goals.Append(g)
			applied.Added = append(applied.Added, g)
		case domain.Decrease:
			var removed domain.Goal
			var ok bool
			s.goals, removed, ok = s.goals.RemoveLast()
			if ok {
				applied.Removed = append(applied.Removed, removed)
			}
		}
	}
	version := s.goals.Version()
	s.mu.Unlock()

	if !applied.Empty() {
		s.logger.Debug("goal log updated",
			ports.Int("blue", next.BlueScore),
			ports.Int("white", next.WhiteScore),
			ports.Int("added", len(applied.Added)),
			ports.Int("removed", len(applied.Removed)),
			ports.Uint64("version", version),
		)
	}
	if s.emitter != nil {
		s.emitter.OnScoreChange(next, applied)
	}
	return applied, nil
}

// StartGame clears the goal log, starts the clock from zero and moves to
// Running from any state. It then requests a server-side reset, whose failure
// is shown to the operator but does not fail the start, and acknowledges the
// start to the operator.
func (s *Synchronizer) StartGame(ctx context.Context) error {
	s.mu.Lock()
	previous, err := s.lifecycle.TransitionTo(domain.GameRunning, "game started")
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.goals = s.goals.Clear()
	s.final = nil
	s.gameID = uuid.New()
	s.stopwatch.Start()
	gameID := s.gameID
	s.mu.Unlock()

	if previous == domain.GameRunning {
		s.logger.Warn("game restarted, previous goal history discarded")
	}
	s.logger.Info("game started", ports.String("game_id", gameID.String()))
	if s.emitter != nil {
		s.emitter.OnStateChange(previous, domain.GameRunning, "game started")
	}

	_ = s.ResetGame(ctx)
	s.notifier.Notify(GameStartedMessage)
	return nil
}

// EndGame captures the final score, stops the clock without clearing it and
// moves to Ended. Returns domain.ErrGameNotRunning outside a running game.
func (s *Synchronizer) EndGame() (domain.FinalScoreSnapshot, error) {
	s.mu.Lock()
	if s.lifecycle.State() != domain.GameRunning {
		s.mu.Unlock()
		return domain.FinalScoreSnapshot{}, domain.ErrGameNotRunning
	}
	previous, err := s.lifecycle.TransitionTo(domain.GameEnded, "game ended")
	if err != nil {
		s.mu.Unlock()
		return domain.FinalScoreSnapshot{}, err
	}
	s.stopwatch.Stop()
	final := domain.FinalScoreSnapshot{
		GameID:   s.gameID,
		Blue:     s.score.BlueScore,
		White:    s.score.WhiteScore,
		Duration: s.stopwatch.Elapsed(),
		EndedAt:  s.clock.Now(),
	}
	s.final = &final
	s.mu.Unlock()

	s.logger.Info("game ended",
		ports.String("game_id", final.GameID.String()),
		ports.Int("blue", final.Blue),
		ports.Int("white", final.White),
		ports.Duration("duration", final.Duration),
	)
	if s.emitter != nil {
		s.emitter.OnStateChange(previous, domain.GameEnded, "game ended")
	}
	return final, nil
}

// DismissStatistics leaves the statistics view and returns to Idle.
// Returns domain.ErrStatisticsNotShown unless the game has ended.
func (s *Synchronizer) DismissStatistics() error {
	s.mu.Lock()
	if s.lifecycle.State() != domain.GameEnded {
		s.mu.Unlock()
		return domain.ErrStatisticsNotShown
	}
	previous, err := s.lifecycle.TransitionTo(domain.GameIdle, "statistics dismissed")
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.final = nil
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.OnStateChange(previous, domain.GameIdle, "statistics dismissed")
	}
	return nil
}

// ResetGame asks the table to reset its score. Any failure is shown to the
// operator and returned; local scores and the goal log are left as they are
// until the feed reports the reset.
func (s *Synchronizer) ResetGame(ctx context.Context) error {
	if err := s.api.ResetGame(ctx); err != nil {
		s.logger.Warn("reset game failed", ports.Err(err))
		s.notifier.Notify(err.Error())
		return err
	}
	s.logger.Debug("reset game requested")
	return nil
}

// UpdateGoal asks the table to add or subtract one goal for team.
// Failures are shown to the operator and returned; nothing changes locally.
func (s *Synchronizer) UpdateGoal(ctx context.Context, team domain.TeamID, action domain.ScoreAction) error {
	if !team.Valid() {
		return domain.ErrBadTeam
	}
	if action != domain.ActionAdd && action != domain.ActionSub {
		return domain.ErrBadAction
	}
	if err := s.api.UpdateGoal(ctx, team, action); err != nil {
		err = fmt.Errorf("%s goal for %s: %w", action, team, err)
		s.logger.Warn("update goal failed", ports.Err(err))
		s.notifier.Notify(err.Error())
		return err
	}
	s.logger.Debug("goal update requested",
		ports.String("team", team.String()),
		ports.String("action", string(action)),
	)
	return nil
}

// SetFeedStatus records whether the live feed is connected.
func (s *Synchronizer) SetFeedStatus(connected bool, err error) {
	s.mu.Lock()
	s.feedConnected = connected
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.OnFeedStatus(connected, err)
	}
}

// State returns the current game state.
func (s *Synchronizer) State() domain.GameState {
	return s.lifecycle.State()
}

// View returns a copy of everything a presenter needs.
func (s *Synchronizer) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		State:         s.lifecycle.State(),
		GameID:        s.gameID,
		Score:         s.score,
		Goals:         s.goals.Goals(),
		BlueGoals:     s.goals.CountFor(domain.TeamBlue),
		WhiteGoals:    s.goals.CountFor(domain.TeamWhite),
		LogVersion:    s.goals.Version(),
		Elapsed:       s.stopwatch.Elapsed(),
		ClockRunning:  s.stopwatch.Running(),
		FeedConnected: s.feedConnected,
	}
	if s.final != nil {
		final := *s.final
		v.Final = &final
	}
	return v
}
