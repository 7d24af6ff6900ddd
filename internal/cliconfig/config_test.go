package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/pkg/scoreboard"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WSBaseURL != scoreboard.DefaultWSURL {
		t.Errorf("WSBaseURL = %v, want %v", cfg.WSBaseURL, scoreboard.DefaultWSURL)
	}
	if cfg.APIBaseURL != scoreboard.DefaultAPIURL {
		t.Errorf("APIBaseURL = %v, want %v", cfg.APIBaseURL, scoreboard.DefaultAPIURL)
	}
	if cfg.Greeting != "Hello from client" {
		t.Errorf("Greeting = %q, want Hello from client", cfg.Greeting)
	}
	if !cfg.Reconnect {
		t.Error("Reconnect = false, want true")
	}
	if cfg.ReconnectInitial != 500*time.Millisecond || cfg.ReconnectMax != 10*time.Second {
		t.Errorf("reconnect = %v..%v, want 500ms..10s", cfg.ReconnectInitial, cfg.ReconnectMax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultConfig_MatchesScoreboard(t *testing.T) {
	cli := DefaultConfig()
	lib := scoreboard.DefaultConfig()

	tests := []struct {
		name      string
		got, want any
	}{
		{"ws url", cli.WSBaseURL, lib.WSBaseURL},
		{"api url", cli.APIBaseURL, lib.APIBaseURL},
		{"greeting", cli.Greeting, lib.Greeting},
		{"http timeout", cli.HTTPTimeout, lib.HTTPTimeout},
		{"dial timeout", cli.DialTimeout, lib.DialTimeout},
		{"reconnect", cli.Reconnect, lib.Reconnect},
		{"reconnect initial", cli.ReconnectInitial, lib.ReconnectInitial},
		{"reconnect max", cli.ReconnectMax, lib.ReconnectMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func validConfig() Config {
	return Config{
		WSBaseURL:        "ws://table.local:3000",
		APIBaseURL:       "http://table.local:3000",
		HTTPTimeout:      time.Second,
		DialTimeout:      time.Second,
		ReconnectInitial: time.Second,
		ReconnectMax:     time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"secure schemes", func(c *Config) {
			c.WSBaseURL = "wss://table.example.com"
			c.APIBaseURL = "https://table.example.com/api"
		}, false},
		{"http scheme for feed", func(c *Config) { c.WSBaseURL = "http://table.local" }, true},
		{"ws scheme for api", func(c *Config) { c.APIBaseURL = "ws://table.local" }, true},
		{"empty feed url", func(c *Config) { c.WSBaseURL = "" }, true},
		{"scheme only", func(c *Config) { c.APIBaseURL = "http://" }, true},
		{"zero http timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"negative dial timeout", func(c *Config) { c.DialTimeout = -time.Second }, true},
		{"zero reconnect initial", func(c *Config) { c.ReconnectInitial = 0 }, true},
		{"max below initial", func(c *Config) {
			c.ReconnectInitial = 5 * time.Second
			c.ReconnectMax = time.Second
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_TrimsTrailingSlash(t *testing.T) {
	cfg := validConfig()
	cfg.WSBaseURL = "ws://table.local:3000/"
	cfg.APIBaseURL = "http://table.local:3000/api//"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.WSBaseURL != "ws://table.local:3000" {
		t.Errorf("WSBaseURL = %v", cfg.WSBaseURL)
	}
	if cfg.APIBaseURL != "http://table.local:3000/api" {
		t.Errorf("APIBaseURL = %v", cfg.APIBaseURL)
	}
}
