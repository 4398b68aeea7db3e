// Package uci implements the line based UCI protocol on top of the engine.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Session holds the state of one UCI conversation. A Session is not safe
// for concurrent use; give each connection its own.
type Session struct {
	cfg      *config.Config
	log      zerolog.Logger
	searcher *search.Searcher
	board    *chess.Board
}

// NewSession creates a session positioned at the initial position.
func NewSession(cfg *config.Config, log zerolog.Logger) *Session {
	return &Session{
		cfg:      cfg,
		log:      log,
		searcher: search.NewSearcher(log, search.WithWorkers(cfg.Search.Workers)),
		board:    engine.NewInitialBoard(),
	}
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Run reads commands from r until "quit" or end of input, writing replies
// to w.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if quit := s.Execute(scanner.Text(), w); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute handles a single command line and reports whether the session
// should end.
func (s *Session) Execute(line string, w io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	s.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("uci command")

	var err error
	switch cmd {
	case "uci":
		fmt.Fprintf(w, "id name %s\n", s.cfg.UCI.Name)
		fmt.Fprintf(w, "id author %s\n", s.cfg.UCI.Author)
		fmt.Fprintln(w, "uciok")
	case "isready":
		fmt.Fprintln(w, "readyok")
	case "ucinewgame":
		s.board = engine.NewInitialBoard()
	case "position":
		err = s.position(args)
	case "go":
		err = s.goSearch(args, w)
	case "d":
		fmt.Fprint(w, s.board.Diagram())
		fmt.Fprintln(w, engine.BoardToFEN(s.board))
	case "perft":
		err = s.perft(args, w)
	case "stop":
	case "quit":
		return true
	default:
		s.log.Debug().Str("cmd", cmd).Msg("ignoring unknown command")
	}

	if err != nil {
		s.log.Warn().Err(err).Str("cmd", cmd).Msg("command failed")
	}
	return false
}

// position handles "position startpos|fen <fields> [moves ...]". The
// session board changes only when the whole command succeeds.
func (s *Session) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position needs startpos or fen", errors.ErrInvalidFEN)
	}

	fenFields, moves := splitMoves(args[1:])

	var board *chess.Board
	switch args[0] {
	case "startpos":
		board = engine.NewInitialBoard()
	case "fen":
		b, err := engine.NewBoardFromFEN(strings.Join(fenFields, " "))
		if err != nil {
			return err
		}
		board = b
	default:
		return fmt.Errorf("%w: unknown position source %q", errors.ErrInvalidFEN, args[0])
	}

	for _, text := range moves {
		move, err := engine.ParseLegalMove(board, text)
		if err != nil {
			return err
		}
		if err := engine.MakeMove(board, move); err != nil {
			return err
		}
	}

	s.board = board
	return nil
}

// splitMoves splits tokens at the "moves" keyword.
func splitMoves(tokens []string) (before, moves []string) {
	for i, tok := range tokens {
		if tok == "moves" {
			return tokens[:i], tokens[i+1:]
		}
	}
	return tokens, nil
}

func (s *Session) goSearch(args []string, w io.Writer) error {
	params, err := parseGo(args)
	if err != nil {
		return err
	}
	if budget, ok := params.budget(s.board.ToMove); ok {
		s.log.Info().Int("ms", budget).Msg("time budget ignored, searching to fixed depth")
	}

	depth := s.cfg.Search.ClampDepth(params.depth)
	result := s.searcher.Search(s.board, depth)
	if !result.Found {
		fmt.Fprintf(w, "bestmove %s\n", chess.NullMoveString)
		return nil
	}

	s.log.Info().
		Int("depth", depth).
		Uint64("nodes", result.Nodes).
		Int("score", result.Score).
		Str("move", result.Move.String()).
		Msg("search")
	fmt.Fprintf(w, "info depth %d score %s nodes %d\n", depth, formatScore(result.Score, depth), result.Nodes)
	fmt.Fprintf(w, "bestmove %s\n", result.Move)
	return nil
}

func (s *Session) perft(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("perft needs a depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("perft depth %q: not a non-negative integer", args[0])
	}
	if limit := s.cfg.Search.PerftMaxDepth; depth > limit {
		return fmt.Errorf("perft depth %d above limit %d: %w", depth, limit, errors.ErrInvalidConfig)
	}
	fmt.Fprintf(w, "nodes %d\n", engine.Perft(s.board, depth))
	return nil
}

// formatScore renders a root score as "cp N" or, for forced mates,
// "mate N" in moves (negative when the side to move is being mated).
func formatScore(score, depth int) string {
	if engine.Abs(score) < search.MateScore {
		return fmt.Sprintf("cp %d", score)
	}
	remaining := engine.Abs(score) - search.MateScore
	ply := depth + 1 - remaining
	moves := (ply + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return fmt.Sprintf("mate %d", moves)
}
