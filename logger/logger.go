// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, console
}

// DefaultConfig returns the configuration used by the CLI: console output,
// warnings and up. The engine is expected to stay quiet on the happy path.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "console"}
}

// FromEnv returns the default configuration overridden by the
// FINBOOK_LOG_LEVEL and FINBOOK_LOG_FORMAT environment variables.
func FromEnv() Config {
	config := DefaultConfig()
	if v := os.Getenv("FINBOOK_LOG_LEVEL"); v != "" {
		config.Level = v
	}
	if v := os.Getenv("FINBOOK_LOG_FORMAT"); v != "" {
		config.Format = v
	}
	return config
}

// Setup initializes the global logger with the provided configuration.
func Setup(config Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stderr
	if strings.ToLower(config.Format) != "json" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return nil
}

// WithComponent returns a logger with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
