package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// Position addresses a square. Row 0 is rank 8 and column 0 is file a.
// Off-board positions are valid values (rays run off the edge) but must
// never be used to index the board.
type Position struct {
	Row int
	Col int
}

// Squares referenced by the castling rules.
var (
	A1 = Position{Row: 7, Col: 0}
	B1 = Position{Row: 7, Col: 1}
	C1 = Position{Row: 7, Col: 2}
	D1 = Position{Row: 7, Col: 3}
	E1 = Position{Row: 7, Col: 4}
	F1 = Position{Row: 7, Col: 5}
	G1 = Position{Row: 7, Col: 6}
	H1 = Position{Row: 7, Col: 7}

	A8 = Position{Row: 0, Col: 0}
	B8 = Position{Row: 0, Col: 1}
	C8 = Position{Row: 0, Col: 2}
	D8 = Position{Row: 0, Col: 3}
	E8 = Position{Row: 0, Col: 4}
	F8 = Position{Row: 0, Col: 5}
	G8 = Position{Row: 0, Col: 6}
	H8 = Position{Row: 0, Col: 7}
)

// PositionFromIndex converts a linear board index (row*8+col) to a position.
func PositionFromIndex(i int) Position {
	return Position{Row: i / BoardSize, Col: i % BoardSize}
}

// Index returns the linear board index of the position.
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// IsOnBoard reports whether both coordinates are in [0,7].
func (p Position) IsOnBoard() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Up moves n rows toward rank 8.
func (p Position) Up(n int) Position {
	return Position{Row: p.Row - n, Col: p.Col}
}

// Down moves n rows toward rank 1.
func (p Position) Down(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col}
}

// Left moves n columns toward file a.
func (p Position) Left(n int) Position {
	return Position{Row: p.Row, Col: p.Col - n}
}

// Right moves n columns toward file h.
func (p Position) Right(n int) Position {
	return Position{Row: p.Row, Col: p.Col + n}
}

// UpColour moves n rows toward the opponent of colour.
func (p Position) UpColour(colour Colour, n int) Position {
	if colour == White {
		return p.Up(n)
	}
	return p.Down(n)
}

// DownColour moves n rows toward colour's own back rank.
func (p Position) DownColour(colour Colour, n int) Position {
	if colour == White {
		return p.Down(n)
	}
	return p.Up(n)
}

// IsPawnStartingRow reports whether a pawn of colour on this row may double push.
func (p Position) IsPawnStartingRow(colour Colour) bool {
	if colour == White {
		return p.Row == 6
	}
	return p.Row == 1
}

// IsPromotionRow reports whether a pawn of colour landing here promotes.
func (p Position) IsPromotionRow(colour Colour) bool {
	if colour == White {
		return p.Row == 0
	}
	return p.Row == BoardSize-1
}

// ParsePosition converts two-character algebraic notation ("e4") to a position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "two characters",
			Got:      fmt.Sprintf("%d", len(s)),
		}
	}
	file, rank := s[0], s[1]
	if file < FirstCol || file > LastCol {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < FirstRank || rank > LastRank {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Position{
		Row: int(LastRank - rank),
		Col: int(file - FirstCol),
	}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for fixed squares in tests and tables.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the algebraic notation of an on-board position, or "-" otherwise.
func (p Position) String() string {
	if !p.IsOnBoard() {
		return "-"
	}
	return string([]byte{byte(FirstCol + p.Col), byte(LastRank - p.Row)})
}
