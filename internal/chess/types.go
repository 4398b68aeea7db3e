// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type. The zero value marks an empty square.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter FEN representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// Piece is a piece standing on the board. Pos always matches the square it occupies.
type Piece struct {
	Type   PieceType
	Pos    Position
	Colour Colour
}

// NewPiece creates a piece of the given type and colour at pos.
func NewPiece(pieceType PieceType, pos Position, colour Colour) Piece {
	return Piece{Type: pieceType, Pos: pos, Colour: colour}
}

// IsEmpty returns true if the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// At returns a copy of the piece moved to pos. Used to probe
// attack status on squares the piece is about to cross.
func (p Piece) At(pos Position) Piece {
	p.Pos = pos
	return p
}

// FENLetter returns the FEN letter of the piece, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// CastleRight holds the castling availability of one colour.
// A right is only ever switched on while setting up a position.
type CastleRight struct {
	Kingside  bool
	Queenside bool
}

// CanCastle returns true if either castling right is still held.
func (c CastleRight) CanCastle() bool {
	return c.Kingside || c.Queenside
}

// Off removes both castling rights.
func (c *CastleRight) Off() {
	c.Kingside = false
	c.Queenside = false
}

// NullMoveString is the UCI representation of "no move".
const NullMoveString = "0000"
