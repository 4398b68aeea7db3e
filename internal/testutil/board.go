package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Positions shared by tests across packages.
const (
	// KiwipeteFEN exercises castling, en passant, promotions and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// FoolsMateFEN is White checkmated after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN has Black to move with no legal move and no check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// CastlingFEN has both kings and all four rooks at home with open back ranks.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// MateInOneFEN lets White mate with Ra1-a8.
	MateInOneFEN = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
)

// MustBoard decodes fen and fails the test on error.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustPlay applies each move text in turn with engine.MakeMove and fails
// the test on the first error.
func MustPlay(t *testing.T, board *chess.Board, moves ...string) *chess.Board {
	t.Helper()
	for _, text := range moves {
		move, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if err := engine.MakeMove(board, move); err != nil {
			t.Fatalf("MakeMove(%s) error: %v", text, err)
		}
	}
	return board
}
