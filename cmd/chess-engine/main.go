// chess-engine is a UCI chess engine speaking the protocol on stdin and stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/logging"
	"github.com/lgbarn/chess-engine-go/internal/uci"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := buildConfig(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log.Info().
		Int("depth", cfg.Search.Depth).
		Int("workers", cfg.Search.Workers).
		Msg("engine started")

	if err := uci.NewSession(cfg, log).Run(os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("reading commands")
		closeLog()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "A UCI chess engine. Commands are read from stdin, replies written to stdout.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  uci, isready, ucinewgame, position, go, stop, quit\n")
	fmt.Fprintf(os.Stderr, "  d          print the current position as FEN\n")
	fmt.Fprintf(os.Stderr, "  perft N    count leaf nodes N plies deep\n")
}
