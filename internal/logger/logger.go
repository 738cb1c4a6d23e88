package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger. Output goes to stderr so tables and JSON
// on stdout stay pipeable. An unknown level falls back to warn, which
// keeps normal invocations quiet.
func New(level string) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(consoleWriter).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
