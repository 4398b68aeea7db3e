// Package config provides configuration for the chess engine binaries.
package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	Search *SearchConfig
	Log    *LogConfig
	Server *ServerConfig
	UCI    *UCIConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search: NewSearchConfig(),
		Log:    NewLogConfig(),
		Server: NewServerConfig(),
		UCI:    NewUCIConfig(),
	}
}

// SetLogOutput sets the stream log lines are written to.
func (c *Config) SetLogOutput(w io.Writer) {
	c.Log.Output = w
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Search == nil || c.Log == nil || c.Server == nil || c.UCI == nil {
		return fmt.Errorf("missing configuration section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.UCI.Validate()
}
