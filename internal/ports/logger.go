package ports

import "github.com/smartkickers/kicker/pkg/log"

// Logger provides structured logging for the application layer.
type Logger = log.Logger

// Field is a structured log key-value pair.
type Field = log.Field

// Field constructors, re-exported so internal packages only import ports.
var (
	String   = log.String
	Int      = log.Int
	Uint64   = log.Uint64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
