package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error or disabled
	Level string

	// Output receives log lines. It must never be the UCI output stream.
	Output io.Writer

	// Pretty switches to human readable console output
	Pretty bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Output: os.Stderr,
	}
}

// Validate checks that the log level is known.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.Output == nil {
		return fmt.Errorf("log output is nil: %w", errors.ErrInvalidConfig)
	}
	return nil
}
