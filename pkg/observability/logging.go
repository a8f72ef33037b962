package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevelEnv names the environment variable that sets the default log level.
const LogLevelEnv = "X16R_LOG_LEVEL"

// NewLogger creates a structured JSON logger on stdout tagged with component.
// The level comes from X16R_LOG_LEVEL and defaults to info.
func NewLogger(component string) zerolog.Logger {
	return NewLoggerTo(os.Stdout, component, ParseLogLevel(os.Getenv(LogLevelEnv)))
}

// NewLoggerTo creates a logger with an explicit writer and level.
func NewLoggerTo(w io.Writer, component string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// ParseLogLevel maps a level name to a zerolog level, falling back to info.
func ParseLogLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
