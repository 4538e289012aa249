package configs

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger defines configuration options for the structured logger. Level
// controls the minimum level emitted. Valid values include "debug", "info",
// "warn" and "error"; unknown levels fall back to "info".
type Logger struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// ZerologLevel converts the textual level into a zerolog.Level.
func (c Logger) ZerologLevel() zerolog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
