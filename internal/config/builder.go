package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the default search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithMaxDepth sets the largest depth a request may ask for.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Search.MaxDepth = depth
	return b
}

// WithWorkers sets the number of concurrent root searches.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPerftMaxDepth sets the largest depth the perft command accepts.
func (b *ConfigBuilder) WithPerftMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Search.PerftMaxDepth = depth
	return b
}

// WithLogLevel sets the log level by name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.SetLogOutput(w)
	return b
}

// WithPrettyLogs enables console formatted logs.
func (b *ConfigBuilder) WithPrettyLogs(enabled bool) *ConfigBuilder {
	b.cfg.Log.Pretty = enabled
	return b
}

// WithListenAddr sets the server listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithAllowOrigins sets the CORS origins the server accepts.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithEngineName sets the name reported to UCI clients.
func (b *ConfigBuilder) WithEngineName(name string) *ConfigBuilder {
	b.cfg.UCI.Name = name
	return b
}
