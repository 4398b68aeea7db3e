package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Move represents a single move in coordinate form.
type Move struct {
	From Position
	To   Position

	// The piece promoted to (Empty if not a promotion).
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// promotionLetters maps promotion pieces to the trailing letter of the
// move text. Knights use 'k', which is what the engine has always spoken.
var promotionLetters = map[PieceType]byte{
	Knight: 'k',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// ParseMove decodes coordinate move text: "e2e4", or "e7e8q" with a promotion.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMove,
			Input:    text,
			Expected: "4 or 5 characters",
		}
	}

	from, err := ParsePosition(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: %w", errors.ErrInvalidMove, text, err)
	}
	to, err := ParsePosition(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: %w", errors.ErrInvalidMove, text, err)
	}

	move := NewMove(from, to)
	if len(text) == 5 {
		promotion, ok := promotionFromLetter(text[4])
		if !ok {
			return Move{}, &errors.ParseError{
				Err:      errors.ErrInvalidMove,
				Input:    text,
				Expected: "promotion letter q, r, b or k",
				Got:      string(text[4]),
			}
		}
		move.Promotion = promotion
	}
	return move, nil
}

// MustParseMove is like ParseMove but panics on malformed input.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

func promotionFromLetter(c byte) (PieceType, bool) {
	for piece, letter := range promotionLetters {
		if letter == c {
			return piece, true
		}
	}
	return Empty, false
}

// String returns the coordinate move text.
func (m Move) String() string {
	text := m.From.String() + m.To.String()
	if letter, ok := promotionLetters[m.Promotion]; ok {
		text += string(letter)
	}
	return text
}
