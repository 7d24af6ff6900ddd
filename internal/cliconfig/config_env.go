package cliconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (KICKER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("ws-url", os.Getenv("KICKER_WS_URL"), &cfg.WSBaseURL)
	s.setString("api-url", os.Getenv("KICKER_API_URL"), &cfg.APIBaseURL)
	s.setString("greeting", os.Getenv("KICKER_GREETING"), &cfg.Greeting)
	s.setString("log-level", os.Getenv("KICKER_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("http-timeout", os.Getenv("KICKER_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("dial-timeout", os.Getenv("KICKER_DIAL_TIMEOUT"), &cfg.DialTimeout); err != nil {
		return err
	}
	if err := s.setDuration("reconnect-initial", os.Getenv("KICKER_RECONNECT_INITIAL"), &cfg.ReconnectInitial); err != nil {
		return err
	}
	if err := s.setDuration("reconnect-max", os.Getenv("KICKER_RECONNECT_MAX"), &cfg.ReconnectMax); err != nil {
		return err
	}
	if err := s.setBoolFromString("reconnect", os.Getenv("KICKER_RECONNECT"), &cfg.Reconnect); err != nil {
		return err
	}

	return nil
}
