// Package logger builds the application's zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr. Pretty enables the human-readable
// console writer for local runs; otherwise output is JSON, one event per line.
func New(level string, pretty bool) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(logLevel).With().Timestamp().Logger()
}
