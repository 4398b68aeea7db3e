// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Server options
	listenAddr   = flag.String("addr", ":8080", "Address to listen on")
	allowOrigins = flag.String("origins", "*", "Comma separated CORS origins")

	// Search options
	depth    = flag.Int("depth", config.DefaultDepth, "Search depth when a request does not name one")
	maxDepth = flag.Int("maxdepth", config.DefaultMaxDepth, "Largest depth a request may ask for")
	workers  = flag.Int("workers", 0, "Root moves searched concurrently (0 = one per CPU)")

	// Logging
	logLevel  = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error, disabled")
	prettyLog = flag.Bool("pretty", false, "Human readable log lines")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig binds the parsed flags onto a ConfigBuilder.
func buildConfig(logOut io.Writer) (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithListenAddr(*listenAddr).
		WithAllowOrigins(*allowOrigins).
		WithDepth(*depth).
		WithMaxDepth(*maxDepth).
		WithLogLevel(*logLevel).
		WithLogFile(logOut).
		WithPrettyLogs(*prettyLog)
	if *workers > 0 {
		b = b.WithWorkers(*workers)
	}
	return b.Build()
}
