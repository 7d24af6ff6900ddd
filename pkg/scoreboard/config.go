package scoreboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/smartkickers/kicker/internal/adapters/ws"
	"github.com/smartkickers/kicker/internal/app"
	"github.com/smartkickers/kicker/internal/domain"
)

const (
	// DefaultWSURL is the default base URL of the table's live score feed.
	DefaultWSURL = "ws://localhost:3000"
	// DefaultAPIURL is the default base URL of the table's REST API.
	DefaultAPIURL = "http://localhost:3000"
)

// Config holds the configuration of a Scoreboard.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// WSBaseURL is the base URL of the live score feed; "/score" is appended.
	WSBaseURL string

	// APIBaseURL is the base URL of the table's REST API.
	APIBaseURL string

	// Greeting is sent as the first text frame after the feed connects.
	Greeting string

	HTTPTimeout time.Duration
	DialTimeout time.Duration

	// Reconnect re-dials the feed with exponential backoff after it drops.
	// When false, the agent crashes on the first feed error.
	Reconnect        bool
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration

	// ConfigPath is passed to plugins; it is not read by the scoreboard.
	ConfigPath string
}

// DefaultConfig returns a Config for a table on localhost:3000.
func DefaultConfig() Config {
	return Config{
		WSBaseURL:        DefaultWSURL,
		APIBaseURL:       DefaultAPIURL,
		Greeting:         ws.DefaultGreeting,
		HTTPTimeout:      10 * time.Second,
		DialTimeout:      5 * time.Second,
		Reconnect:        true,
		ReconnectInitial: app.DefaultBackoffInitial,
		ReconnectMax:     app.DefaultBackoffMax,
	}
}

// SetDefaults fills zero values with defaults. Reconnect is left as set.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.Greeting == "" {
		c.Greeting = d.Greeting
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = d.DialTimeout
	}
	if c.ReconnectInitial <= 0 {
		c.ReconnectInitial = d.ReconnectInitial
	}
	if c.ReconnectMax <= 0 {
		c.ReconnectMax = d.ReconnectMax
	}
	c.WSBaseURL = strings.TrimRight(c.WSBaseURL, "/")
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
}

// Validate checks that both base URLs are set.
func (c Config) Validate() error {
	if c.WSBaseURL == "" {
		return fmt.Errorf("%w: WSBaseURL is required", domain.ErrInvalidConfig)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: APIBaseURL is required", domain.ErrInvalidConfig)
	}
	if c.ReconnectMax < c.ReconnectInitial {
		return fmt.Errorf("%w: ReconnectMax below ReconnectInitial", domain.ErrInvalidConfig)
	}
	return nil
}
