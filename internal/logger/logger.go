// Package logger builds the application's zerolog logger. Output is JSON on
// stdout; in development it switches to the human-readable console writer.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if appEnv == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
