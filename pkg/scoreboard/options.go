package scoreboard

import (
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/smartkickers/kicker/pkg/log"
)

// Option configures optional behavior of a Scoreboard.
type Option func(*options)

// options holds the optional configuration for a Scoreboard instance.
type options struct {
	httpClient   HTTPClient
	logger       Logger
	clock        clockwork.Clock
	notifier     Notifier
	eventHandler EventHandler
	feed         ScoreFeed
	tableAPI     TableAPI
	plugins      []Plugin
}

func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
		clock:      clockwork.NewRealClock(),
	}
}

// WithHTTPClient sets a custom HTTP client for table API calls.
// If not provided, a client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock driving the game stopwatch and reconnect backoff.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithNotifier sets where operator alerts are shown.
// If not provided, alerts are logged at info level.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithEventHandler sets a handler for scoreboard events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithFeed replaces the WebSocket score feed.
func WithFeed(feed ScoreFeed) Option {
	return func(o *options) {
		o.feed = feed
	}
}

// WithTableAPI replaces the HTTP table API client.
func WithTableAPI(api TableAPI) Option {
	return func(o *options) {
		o.tableAPI = api
	}
}

// WithPlugin registers a plugin to be initialized when the scoreboard starts.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// logNotifier shows operator alerts through the logger.
type logNotifier struct {
	logger Logger
}

func (n logNotifier) Notify(msg string) {
	n.logger.Info("operator alert", log.String("message", msg))
}
