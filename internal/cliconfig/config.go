package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/pkg/scoreboard"
)

// Config holds CLI configuration for kicker.
type Config struct {
	WSBaseURL  string
	APIBaseURL string
	Greeting   string

	HTTPTimeout time.Duration
	DialTimeout time.Duration

	Reconnect        bool
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration

	LogLevel string
	EnvFile  string
}

// DefaultConfig returns the scoreboard defaults plus the CLI-only settings.
func DefaultConfig() Config {
	d := scoreboard.DefaultConfig()
	return Config{
		WSBaseURL:        d.WSBaseURL,
		APIBaseURL:       d.APIBaseURL,
		Greeting:         d.Greeting,
		HTTPTimeout:      d.HTTPTimeout,
		DialTimeout:      d.DialTimeout,
		Reconnect:        d.Reconnect,
		ReconnectInitial: d.ReconnectInitial,
		ReconnectMax:     d.ReconnectMax,
		LogLevel:         "info",
		EnvFile:          ".env",
	}
}

// Validate checks the configuration for errors and normalises URLs.
func (c *Config) Validate() error {
	c.WSBaseURL = strings.TrimRight(c.WSBaseURL, "/")
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	if !hasScheme(c.WSBaseURL, "ws://", "wss://") {
		return fmt.Errorf("%w: ws-url must start with ws:// or wss://, got %q", domain.ErrInvalidConfig, c.WSBaseURL)
	}
	if !hasScheme(c.APIBaseURL, "http://", "https://") {
		return fmt.Errorf("%w: api-url must start with http:// or https://, got %q", domain.ErrInvalidConfig, c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.DialTimeout <= 0 {
		return fmt.Errorf("%w: dial timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.ReconnectInitial <= 0 || c.ReconnectMax <= 0 {
		return fmt.Errorf("%w: reconnect intervals must be positive", domain.ErrInvalidConfig)
	}
	if c.ReconnectMax < c.ReconnectInitial {
		return fmt.Errorf("%w: reconnect-max must not be below reconnect-initial", domain.ErrInvalidConfig)
	}
	return nil
}

func hasScheme(u string, schemes ...string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(u, s) && len(u) > len(s) {
			return true
		}
	}
	return false
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
