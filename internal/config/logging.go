package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error or disabled.
	Level string

	// File receives log output. Nil disables logging.
	File io.Writer

	// Console writes human readable lines instead of JSON.
	Console bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "warn",
		File:  os.Stderr,
	}
}

// ParseLevel parses Level. An empty level means warn.
func (l *LogConfig) ParseLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(l.Level)
}

// Logger builds the configured logger.
func (l *LogConfig) Logger() zerolog.Logger {
	level, err := l.ParseLevel()
	if err != nil || l.File == nil {
		return zerolog.Nop()
	}
	w := l.File
	if l.Console {
		w = zerolog.ConsoleWriter{Out: l.File, NoColor: true, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Logger builds the logger described by c.Log.
func (c *Config) Logger() zerolog.Logger {
	return c.Log.Logger()
}
