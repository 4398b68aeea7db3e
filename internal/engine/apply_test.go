package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	cerrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func sq(s string) chess.Position {
	return chess.MustParsePosition(s)
}

func TestApplyMove_EnPassantTarget(t *testing.T) {
	board := NewInitialBoard()

	if err := MakeMove(board, chess.MustParseMove("e2e4")); err != nil {
		t.Fatalf("MakeMove(e2e4) error = %v", err)
	}
	if !board.IsEnPassantTarget(sq("e3")) {
		t.Errorf("en passant target = %v %s, want e3", board.EnPassant, board.EPSquare)
	}
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", board.ToMove)
	}

	if err := MakeMove(board, chess.MustParseMove("g8f6")); err != nil {
		t.Fatalf("MakeMove(g8f6) error = %v", err)
	}
	if board.EnPassant {
		t.Errorf("en passant target %s survived a non-pawn move", board.EPSquare)
	}
}

func TestApplyMove_EnPassantCapture(t *testing.T) {
	board := mustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	if err := ApplyMove(board, chess.MustParseMove("e5f6")); err != nil {
		t.Fatalf("ApplyMove(e5f6) error = %v", err)
	}
	if !board.HasPiece(sq("f6"), chess.Pawn, chess.White) {
		t.Error("capturing pawn not on f6")
	}
	if board.IsOccupied(sq("f5")) {
		t.Error("captured pawn still on f5")
	}
	if board.IsOccupied(sq("e5")) {
		t.Error("e5 not vacated")
	}
	if !board.HasPiece(sq("d5"), chess.Pawn, chess.Black) {
		t.Error("unrelated pawn on d5 was touched")
	}
	if board.EnPassant {
		t.Error("en passant target not cleared")
	}
}

func TestApplyMove_BlackDoublePush(t *testing.T) {
	board := mustFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err := ApplyMove(board, chess.MustParseMove("d7d5")); err != nil {
		t.Fatalf("ApplyMove(d7d5) error = %v", err)
	}
	if !board.IsEnPassantTarget(sq("d6")) {
		t.Errorf("en passant target = %s, want d6", board.EPSquare)
	}
	if !board.HasPiece(sq("d5"), chess.Pawn, chess.Black) {
		t.Error("pawn not on d5")
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		move string
		want chess.PieceType
	}{
		{"e7e8q", chess.Queen},
		{"e7e8k", chess.Knight},
		{"e7d8r", chess.Rook},
		{"e7d8b", chess.Bishop},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			board := mustFEN(t, "3r3k/4P3/8/8/8/8/8/K7 w - - 0 1")
			move := chess.MustParseMove(tt.move)
			if err := ApplyMove(board, move); err != nil {
				t.Fatalf("ApplyMove(%s) error = %v", tt.move, err)
			}
			got := board.Get(move.To)
			if got.Type != tt.want || got.Colour != chess.White {
				t.Errorf("%s landed as %v %v, want White %v", tt.move, got.Colour, got.Type, tt.want)
			}
			if board.IsOccupied(sq("e7")) {
				t.Error("e7 not vacated")
			}
		})
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		kingTo   string
		rookTo   string
		kingFrom string
		rookFrom string
		colour   chess.Colour
	}{
		{"white kingside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1g1", "g1", "f1", "e1", "h1", chess.White},
		{"white queenside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1c1", "c1", "d1", "e1", "a1", chess.White},
		{"black kingside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "e8g8", "g8", "f8", "e8", "h8", chess.Black},
		{"black queenside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "e8c8", "c8", "d8", "e8", "a8", chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if err := ApplyMove(board, chess.MustParseMove(tt.move)); err != nil {
				t.Fatalf("ApplyMove(%s) error = %v", tt.move, err)
			}
			if !board.HasPiece(sq(tt.kingTo), chess.King, tt.colour) {
				t.Errorf("king not on %s", tt.kingTo)
			}
			if !board.HasPiece(sq(tt.rookTo), chess.Rook, tt.colour) {
				t.Errorf("rook not on %s", tt.rookTo)
			}
			if board.IsOccupied(sq(tt.kingFrom)) || board.IsOccupied(sq(tt.rookFrom)) {
				t.Error("home squares not vacated")
			}
			if board.Castle(tt.colour).CanCastle() {
				t.Error("castling rights survived castling")
			}
			if !board.Castle(tt.colour.Opposite()).CanCastle() {
				t.Error("opponent castling rights were touched")
			}
		})
	}
}

func TestApplyMove_CastlingRights(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		white chess.CastleRight
		black chess.CastleRight
	}{
		{
			name:  "king move clears both rights",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:  "e1f1",
			white: chess.CastleRight{},
			black: chess.CastleRight{Kingside: true, Queenside: true},
		},
		{
			name:  "kingside rook move",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:  "h1g1",
			white: chess.CastleRight{Queenside: true},
			black: chess.CastleRight{Kingside: true, Queenside: true},
		},
		{
			name:  "queenside rook move",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			move:  "a8b8",
			white: chess.CastleRight{Kingside: true, Queenside: true},
			black: chess.CastleRight{Kingside: true},
		},
		{
			name:  "rook captured in its corner",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:  "a8a1",
			white: chess.CastleRight{Kingside: true},
			black: chess.CastleRight{Kingside: true},
		},
		{
			name:  "rights stay off",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPP1PPP/R3K2R w - - 0 1",
			move:  "e1e2",
			white: chess.CastleRight{},
			black: chess.CastleRight{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if err := ApplyMove(board, chess.MustParseMove(tt.move)); err != nil {
				t.Fatalf("ApplyMove(%s) error = %v", tt.move, err)
			}
			if board.WhiteCastle != tt.white {
				t.Errorf("WhiteCastle = %+v, want %+v", board.WhiteCastle, tt.white)
			}
			if board.BlackCastle != tt.black {
				t.Errorf("BlackCastle = %+v, want %+v", board.BlackCastle, tt.black)
			}
		})
	}
}

func TestApplyMove_CastlingWithoutRook(t *testing.T) {
	board := mustFEN(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K3 w KQkq - 0 1")
	before := *board

	err := ApplyMove(board, chess.MustParseMove("e1g1"))
	if !errors.Is(err, cerrors.ErrIllegalState) {
		t.Fatalf("ApplyMove(e1g1) error = %v, want ErrIllegalState", err)
	}
	var stateErr *cerrors.StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("error %v is not a *StateError", err)
	}
	if stateErr.Move != "e1g1" {
		t.Errorf("StateError.Move = %q, want e1g1", stateErr.Move)
	}
	if *board != before {
		t.Error("board changed by a failed castling move")
	}
}

func TestApplyMove_EmptySource(t *testing.T) {
	board := NewInitialBoard()
	before := *board

	err := ApplyMove(board, chess.MustParseMove("e4e5"))
	if !errors.Is(err, cerrors.ErrIllegalMove) {
		t.Errorf("ApplyMove(e4e5) error = %v, want ErrIllegalMove", err)
	}
	if *board != before {
		t.Error("board changed by a move from an empty square")
	}
}

func TestApplyMove_PiecePositionsStayInSync(t *testing.T) {
	board := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for _, move := range LegalMoves(board) {
		next, err := WithMove(board, move)
		if err != nil {
			t.Fatalf("WithMove(%s) error = %v", move, err)
		}
		for i, piece := range next.Squares {
			if piece.Pos != chess.PositionFromIndex(i) {
				t.Fatalf("after %s square %d holds a piece claiming %s", move, i, piece.Pos)
			}
		}
	}
}

func TestWithMove(t *testing.T) {
	board := NewInitialBoard()
	before := *board

	next, err := WithMove(board, chess.MustParseMove("g1f3"))
	if err != nil {
		t.Fatalf("WithMove(g1f3) error = %v", err)
	}
	if *board != before {
		t.Error("WithMove modified its input board")
	}
	if !next.HasPiece(sq("f3"), chess.Knight, chess.White) {
		t.Error("knight not on f3 in the returned board")
	}
	if next.ToMove != chess.White {
		t.Errorf("WithMove changed the side to move to %v", next.ToMove)
	}

	if _, err := WithMove(board, chess.MustParseMove("e5e6")); err == nil {
		t.Error("WithMove from an empty square succeeded")
	}
}

func TestMakeMove_FlipsTurn(t *testing.T) {
	board := NewInitialBoard()
	for i, text := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		if err := MakeMove(board, chess.MustParseMove(text)); err != nil {
			t.Fatalf("MakeMove(%s) error = %v", text, err)
		}
		want := chess.Black
		if i%2 == 1 {
			want = chess.White
		}
		if board.ToMove != want {
			t.Errorf("after %s ToMove = %v, want %v", text, board.ToMove, want)
		}
	}
	want := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1"
	if got := BoardToFEN(board); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
}

func TestInvertTurn(t *testing.T) {
	board := NewInitialBoard()
	InvertTurn(board)
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", board.ToMove)
	}
	InvertTurn(board)
	if board.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", board.ToMove)
	}
}
