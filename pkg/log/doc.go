// Package log provides the logging abstraction used across the kicker
// scoreboard.
//
// The [Logger] interface can be implemented by any logging library. A zerolog
// implementation is provided for the CLI and a no-op logger is the default
// for embedded use and tests.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	logger.Info("feed connected", log.String("url", url))
//
// The level of every zerolog-backed logger can be changed at runtime with
// [SetLevel], which the CLI uses when its config file is edited.
package log
