// Package logger provides the package-level logger the kernel routines emit
// their telemetry through.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Logger returns the package logger. Kernel events are logged at Debug level,
// so nothing is emitted unless a caller lowers the level or installs its own
// logger with Set.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the package logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable turns logging off entirely.
func Disable() {
	logger = zerolog.Nop()
}
