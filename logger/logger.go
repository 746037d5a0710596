// Package logger holds the process-wide zerolog logger. Call Init once in
// main before anything logs; Get returns the configured instance.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	instance zerolog.Logger
	once     sync.Once
)

// Init configures the singleton. Level is one of trace, debug, info, warn,
// error (defaults to info). Pretty switches from JSON to console output.
func Init(level string, pretty bool) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		var out = os.Stdout
		logger := zerolog.New(out)
		if pretty {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
		}

		instance = logger.Level(parseLevel(level)).With().Timestamp().Logger()
	})
	return instance
}

// Get returns the singleton, initializing it with defaults if needed.
func Get() *zerolog.Logger {
	Init("info", false)
	return &instance
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
