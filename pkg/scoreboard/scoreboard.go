package scoreboard

import (
	"context"
	"errors"
	"net/http"
	"sync"

	httpAdapter "github.com/smartkickers/kicker/internal/adapters/http"
	"github.com/smartkickers/kicker/internal/adapters/ws"
	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/ports"
	"github.com/smartkickers/kicker/pkg/lifecycle"
)

// Scoreboard follows a table's live score, keeps the goal log in sync and
// runs the game actions. Use New() to create an instance and Start() to
// connect to the feed. Game actions work whether or not the feed is running.
type Scoreboard struct {
	config    Config
	lifecycle *lifecycle.Manager
	sync      *app.Synchronizer
	agent     *app.Agent
	logger    ports.Logger
	plugins   []Plugin

	mu        sync.Mutex
	cancel    context.CancelFunc
	pluginsUp bool
}

// New creates a new Scoreboard with the given configuration.
// The instance is created in StateStopped; call Start() to follow the feed.
func New(cfg Config, opts ...Option) (*Scoreboard, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions(&http.Client{Timeout: cfg.HTTPTimeout})
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	notifier := o.notifier
	if notifier == nil {
		notifier = logNotifier{logger: logger}
	}

	api := o.tableAPI
	if api == nil {
		api = httpAdapter.NewTableAPI(cfg.APIBaseURL, o.httpClient, logger)
	}

	feed := o.feed
	if feed == nil {
		feedCfg := ws.DefaultFeedConfig(cfg.WSBaseURL)
		feedCfg.Greeting = cfg.Greeting
		feedCfg.HandshakeTimeout = cfg.DialTimeout
		feed = ws.NewFeed(feedCfg, logger)
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	var gameEvents app.EventEmitter
	if o.eventHandler != nil {
		gameEvents = gameEmitter{emitter}
	}

	s := &Scoreboard{
		config:    cfg,
		lifecycle: lifecycle.NewManager(o.clock, logger, emitter),
		logger:    logger,
		plugins:   o.plugins,
	}
	s.sync = app.NewSynchronizer(api, notifier, o.clock, logger, gameEvents)
	emitter.view = s.sync.View

	s.agent = app.NewAgent(app.AgentConfig{
		Reconnect:      cfg.Reconnect,
		BackoffInitial: cfg.ReconnectInitial,
		BackoffMax:     cfg.ReconnectMax,
	}, feed, s.sync, o.clock, logger)

	return s, nil
}

// Start connects to the live feed in the background and returns
// immediately. Returns ErrAlreadyRunning if already started.
func (s *Scoreboard) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}
	// A crashed run still holds its plugins.
	if s.pluginsUp {
		_ = s.lifecycle.WaitWithTimeout(lifecycle.ShutdownTimeout)
		s.shutdownPlugins(s.plugins)
		s.pluginsUp = false
	}
	if err := s.lifecycle.TransitionTo(StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{
		WSBaseURL:  s.config.WSBaseURL,
		APIBaseURL: s.config.APIBaseURL,
		ConfigPath: s.config.ConfigPath,
		Logger:     s.logger,
	}
	for i, p := range s.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			s.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			s.shutdownPlugins(s.plugins[:i])
			cancel()
			_ = s.lifecycle.TransitionTo(StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		s.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}
	s.pluginsUp = true

	if err := s.lifecycle.TransitionTo(StateRunning, "feed starting"); err != nil {
		cancel()
		return err
	}

	s.lifecycle.AddWorker()
	go func() {
		defer s.lifecycle.WorkerDone()

		err := s.agent.Run(runCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("feed agent stopped", ports.Err(err))
			_ = s.lifecycle.TransitionTo(StateCrashed, err.Error())
			s.lifecycle.Cancel()
		}
	}()

	return nil
}

// Stop disconnects from the feed and shuts plugins down.
// Returns ErrNotRunning if not started, ErrShutdownTimeout if the feed loop
// did not exit in time.
func (s *Scoreboard) Stop() error {
	s.mu.Lock()
	if !s.lifecycle.CanStop() {
		s.mu.Unlock()
		return ErrNotRunning
	}
	if err := s.lifecycle.TransitionTo(StateStopping, "Stop() called"); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	err := s.lifecycle.WaitWithTimeout(lifecycle.ShutdownTimeout)

	s.mu.Lock()
	if s.pluginsUp {
		s.shutdownPlugins(s.plugins)
		s.pluginsUp = false
	}
	s.mu.Unlock()

	if err != nil {
		_ = s.lifecycle.TransitionTo(StateCrashed, "shutdown timeout")
	} else {
		_ = s.lifecycle.TransitionTo(StateStopped, "graceful shutdown")
	}
	return err
}

func (s *Scoreboard) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			s.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			continue
		}
		s.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
	}
}

// Status returns the agent run state.
// Safe to call concurrently from any goroutine.
func (s *Scoreboard) Status() State {
	return s.lifecycle.State()
}

// StartGame clears the goal history, starts the game clock and asks the
// table to reset. Allowed in any game state.
func (s *Scoreboard) StartGame(ctx context.Context) error {
	return s.sync.StartGame(ctx)
}

// EndGame stops the clock and returns the final score.
// Returns ErrGameNotRunning if no game is running.
func (s *Scoreboard) EndGame() (FinalScore, error) {
	return s.sync.EndGame()
}

// DismissStatistics closes the statistics of an ended game.
// Returns ErrStatisticsNotShown if no game has ended.
func (s *Scoreboard) DismissStatistics() error {
	return s.sync.DismissStatistics()
}

// ResetGame asks the table to reset its score.
func (s *Scoreboard) ResetGame(ctx context.Context) error {
	return s.sync.ResetGame(ctx)
}

// UpdateGoal asks the table to add or remove one goal for team.
func (s *Scoreboard) UpdateGoal(ctx context.Context, team Team, action ScoreAction) error {
	return s.sync.UpdateGoal(ctx, team, action)
}

// View returns a copy of the current scoreboard.
func (s *Scoreboard) View() View {
	return s.sync.View()
}
