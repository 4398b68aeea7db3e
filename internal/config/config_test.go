package config

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"testing"

	cerrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Depth)
	}
	if cfg.MaxDepth != 6 {
		t.Errorf("MaxDepth = %d, want 6", cfg.MaxDepth)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.PerftMaxDepth != 5 {
		t.Errorf("PerftMaxDepth = %d, want 5", cfg.PerftMaxDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"valid", SearchConfig{Depth: 3, MaxDepth: 6, Workers: 2, PerftMaxDepth: 5}, false},
		{"depth zero", SearchConfig{Depth: 0, MaxDepth: 6, Workers: 1, PerftMaxDepth: 5}, false},
		{"depth at max", SearchConfig{Depth: 6, MaxDepth: 6, Workers: 1, PerftMaxDepth: 5}, false},
		{"negative depth", SearchConfig{Depth: -1, MaxDepth: 6, Workers: 1, PerftMaxDepth: 5}, true},
		{"depth above max", SearchConfig{Depth: 7, MaxDepth: 6, Workers: 1, PerftMaxDepth: 5}, true},
		{"max depth zero", SearchConfig{Depth: 0, MaxDepth: 0, Workers: 1, PerftMaxDepth: 5}, true},
		{"no workers", SearchConfig{Depth: 3, MaxDepth: 6, Workers: 0, PerftMaxDepth: 5}, true},
		{"no perft depth", SearchConfig{Depth: 3, MaxDepth: 6, Workers: 1, PerftMaxDepth: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, cerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSearchConfig_ClampDepth(t *testing.T) {
	cfg := &SearchConfig{Depth: 3, MaxDepth: 5, Workers: 1, PerftMaxDepth: 5}
	tests := []struct {
		in, want int
	}{
		{-1, 3},
		{0, 0},
		{4, 4},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := cfg.ClampDepth(tt.in); got != tt.want {
			t.Errorf("ClampDepth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestLogConfig_Validate verifies log level names are checked
func TestLogConfig_Validate(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"info", false},
		{"debug", false},
		{"warn", false},
		{"disabled", false},
		{"", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := NewLogConfig()
			cfg.Level = tt.level
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := NewLogConfig()
	cfg.Output = nil
	if err := cfg.Validate(); !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("Validate() with nil output error = %v, want ErrInvalidConfig", err)
	}
}

// TestServerConfig_Defaults verifies ServerConfig has sensible defaults
func TestServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.BodyLimit <= 0 {
		t.Errorf("BodyLimit = %d, want positive", cfg.BodyLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	if cfg.AllowOrigins != "*" {
		t.Errorf("AllowOrigins = %q, want *", cfg.AllowOrigins)
	}

	if cfg.MessageLimit <= 0 {
		t.Errorf("MessageLimit = %d, want positive", cfg.MessageLimit)
	}

	cfg.MessageLimit = 0
	if err := cfg.Validate(); !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("Validate() with zero message limit error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewServerConfig()
	cfg.ListenAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted an empty listen address")
	}
}

// TestConfig_Sections verifies that Config carries every sub-config
func TestConfig_Sections(t *testing.T) {
	cfg := NewConfig()

	if cfg.Search.Depth != DefaultDepth {
		t.Errorf("Search.Depth = %d, want %d", cfg.Search.Depth, DefaultDepth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Output != os.Stderr {
		t.Error("Log.Output should default to stderr")
	}
	if cfg.UCI.Name == "" {
		t.Error("UCI.Name should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg.Server = nil
	if err := cfg.Validate(); !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("Validate() with missing section error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetLogOutput verifies log stream setting
func TestConfig_SetLogOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetLogOutput(buf)

	if cfg.Log.Output != buf {
		t.Error("SetLogOutput did not set Log.Output")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg, err := NewConfigBuilder().
		WithDepth(4).
		WithMaxDepth(8).
		WithWorkers(2).
		WithPerftMaxDepth(3).
		WithLogLevel("debug").
		WithLogFile(buf).
		WithPrettyLogs(true).
		WithListenAddr("127.0.0.1:9000").
		WithAllowOrigins("http://localhost:5173").
		WithEngineName("tester").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.Search.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Search.Depth)
	}
	if cfg.Search.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d, want 8", cfg.Search.MaxDepth)
	}
	if cfg.Search.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Search.Workers)
	}
	if cfg.Search.PerftMaxDepth != 3 {
		t.Errorf("PerftMaxDepth = %d, want 3", cfg.Search.PerftMaxDepth)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Output != buf || !cfg.Log.Pretty {
		t.Error("log output settings not applied")
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:9000", cfg.Server.ListenAddr)
	}
	if cfg.Server.AllowOrigins != "http://localhost:5173" {
		t.Errorf("AllowOrigins = %q", cfg.Server.AllowOrigins)
	}
	if cfg.UCI.Name != "tester" {
		t.Errorf("UCI.Name = %q, want tester", cfg.UCI.Name)
	}
}

func TestConfigBuilder_Invalid(t *testing.T) {
	_, err := NewConfigBuilder().WithDepth(9).WithMaxDepth(4).Build()
	if !errors.Is(err, cerrors.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
}
