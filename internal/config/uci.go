package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// UCIConfig holds the identity the engine reports to UCI clients.
type UCIConfig struct {
	Name   string // Sent as "id name"
	Author string // Sent as "id author"
}

// NewUCIConfig creates a UCIConfig with default values.
func NewUCIConfig() *UCIConfig {
	return &UCIConfig{
		Name:   "chess-engine-go",
		Author: "lgbarn",
	}
}

// Validate checks that the engine has a name to report.
func (u *UCIConfig) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("engine name is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
