package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/smartkickers/kicker/pkg/log"
)

// Logger returns the CLI logger writing human-readable output to stderr.
func Logger() zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr)
}
