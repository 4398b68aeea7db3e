// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Search options
	depth    = flag.Int("depth", config.DefaultDepth, "Search depth in plies when go does not name one")
	maxDepth = flag.Int("maxdepth", config.DefaultMaxDepth, "Largest depth a go command may ask for")
	workers  = flag.Int("workers", 0, "Root moves searched concurrently (0 = one per CPU)")

	// Identity
	engineName = flag.String("name", "", "Engine name reported to the GUI")

	// Logging; UCI owns stdout so logs go to stderr or a file
	logLevel  = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error, disabled")
	logFile   = flag.String("l", "", "Write logs to this file instead of stderr")
	appendLog = flag.Bool("append", false, "Append to the log file instead of truncating it")
	prettyLog = flag.Bool("pretty", false, "Human readable log lines")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig binds the parsed flags onto a ConfigBuilder.
func buildConfig(logOut io.Writer) (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithDepth(*depth).
		WithMaxDepth(*maxDepth).
		WithLogLevel(*logLevel).
		WithLogFile(logOut).
		WithPrettyLogs(*prettyLog)
	if *workers > 0 {
		b = b.WithWorkers(*workers)
	}
	if *engineName != "" {
		b = b.WithEngineName(*engineName)
	}
	return b.Build()
}

// openLogFile returns the log destination named by -l, or stderr.
func openLogFile() (io.Writer, func(), error) {
	if *logFile == "" {
		return os.Stderr, func() {}, nil
	}
	mode := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if *appendLog {
		mode = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(*logFile, mode, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", *logFile, err)
	}
	return file, func() { _ = file.Close() }, nil
}
