package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ServerConfig holds settings for the HTTP analysis server.
type ServerConfig struct {
	// ListenAddr is the address the server binds, e.g. ":8080"
	ListenAddr string

	// BodyLimit caps request bodies, in bytes
	BodyLimit int

	// MessageLimit caps a single websocket message, in bytes
	MessageLimit int

	// ReadTimeout bounds how long reading a request may take
	ReadTimeout time.Duration

	// AllowOrigins is the CORS origin list, comma separated ("*" for any)
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:   ":8080",
		BodyLimit:    64 * 1024,
		MessageLimit: 4 * 1024,
		ReadTimeout:  10 * time.Second,
		AllowOrigins: "*",
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("listen address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.BodyLimit <= 0 {
		return fmt.Errorf("body limit (%d) must be positive: %w", s.BodyLimit, errors.ErrInvalidConfig)
	}
	if s.MessageLimit <= 0 {
		return fmt.Errorf("message limit (%d) must be positive: %w", s.MessageLimit, errors.ErrInvalidConfig)
	}
	if s.AllowOrigins == "" {
		return fmt.Errorf("allowed origins are empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
