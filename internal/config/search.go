package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Search depth defaults, in plies.
const (
	DefaultDepth         = 4
	DefaultMaxDepth      = 6
	DefaultPerftMaxDepth = 5
)

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Depth is the default search depth when a request does not name one
	Depth int

	// MaxDepth caps the depth any request may ask for
	MaxDepth int

	// Workers is the number of root moves searched concurrently
	Workers int

	// PerftMaxDepth caps the depth of the perft debug command
	PerftMaxDepth int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:         DefaultDepth,
		MaxDepth:      DefaultMaxDepth,
		Workers:       runtime.NumCPU(),
		PerftMaxDepth: DefaultPerftMaxDepth,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 {
		return fmt.Errorf("search depth (%d) is negative: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.MaxDepth < 1 {
		return fmt.Errorf("max depth (%d) must be at least 1: %w", s.MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Depth > s.MaxDepth {
		return fmt.Errorf("search depth (%d) > max depth (%d): %w",
			s.Depth, s.MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.PerftMaxDepth < 1 {
		return fmt.Errorf("perft max depth (%d) must be at least 1: %w", s.PerftMaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// ClampDepth returns depth limited to [0, MaxDepth], or the default depth
// when depth is negative.
func (s *SearchConfig) ClampDepth(depth int) int {
	if depth < 0 {
		return s.Depth
	}
	return min(depth, s.MaxDepth)
}
