package chess

import "strings"

// Board represents a chess board with all state needed for move generation.
// A Board is a plain value: copying it yields a fully independent position.
type Board struct {
	// The 64 squares indexed by Position.Index (a8 = 0, h1 = 63).
	Squares [NumSquares]Piece

	// Castling availability per colour.
	WhiteCastle CastleRight
	BlackCastle CastleRight

	// Is EnPassant capture possible? If so then EPSquare holds the
	// square a capturing pawn lands on. Valid for a single move only.
	EnPassant bool
	EPSquare  Position

	// Who has the next move.
	ToMove Colour
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	b := &Board{ToMove: White}
	for i := range b.Squares {
		b.Squares[i] = Piece{Type: Empty, Pos: PositionFromIndex(i)}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for i := range b.Squares {
		b.Squares[i] = Piece{Type: Empty, Pos: PositionFromIndex(i)}
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(Position{Row: 0, Col: col}, NewPiece(backRank[col], Position{}, Black))
		b.Set(Position{Row: 1, Col: col}, NewPiece(Pawn, Position{}, Black))
		b.Set(Position{Row: 6, Col: col}, NewPiece(Pawn, Position{}, White))
		b.Set(Position{Row: 7, Col: col}, NewPiece(backRank[col], Position{}, White))
	}

	b.WhiteCastle = CastleRight{Kingside: true, Queenside: true}
	b.BlackCastle = CastleRight{Kingside: true, Queenside: true}
	b.EnPassant = false
	b.EPSquare = Position{}
	b.ToMove = White
}

// Get returns the piece at pos. Off-board positions read as empty.
func (b *Board) Get(pos Position) Piece {
	if !pos.IsOnBoard() {
		return Piece{Type: Empty, Pos: pos}
	}
	return b.Squares[pos.Index()]
}

// Set places piece at pos, updating the piece's own position to match.
func (b *Board) Set(pos Position, piece Piece) {
	if !pos.IsOnBoard() {
		return
	}
	piece.Pos = pos
	b.Squares[pos.Index()] = piece
}

// Remove empties the square at pos.
func (b *Board) Remove(pos Position) {
	b.Set(pos, Piece{Type: Empty})
}

// Take removes and returns the piece at pos.
func (b *Board) Take(pos Position) Piece {
	piece := b.Get(pos)
	b.Remove(pos)
	return piece
}

// IsOccupied returns true if a piece of either colour stands on pos.
func (b *Board) IsOccupied(pos Position) bool {
	return !b.Get(pos).IsEmpty()
}

// IsOccupiedBy returns true if a piece of colour stands on pos.
func (b *Board) IsOccupiedBy(pos Position, colour Colour) bool {
	piece := b.Get(pos)
	return !piece.IsEmpty() && piece.Colour == colour
}

// HasPiece returns true if a piece of the given type and colour stands on pos.
func (b *Board) HasPiece(pos Position, pieceType PieceType, colour Colour) bool {
	piece := b.Get(pos)
	return piece.Type == pieceType && piece.Colour == colour
}

// IsEnPassantTarget returns true if pos is the active en passant square.
func (b *Board) IsEnPassantTarget(pos Position) bool {
	return b.EnPassant && b.EPSquare == pos
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Position{}
}

// SetEnPassant records pos as the en passant target for the next move.
func (b *Board) SetEnPassant(pos Position) {
	b.EnPassant = true
	b.EPSquare = pos
}

// Castle returns the castling rights of colour for reading or updating.
func (b *Board) Castle(colour Colour) *CastleRight {
	if colour == White {
		return &b.WhiteCastle
	}
	return &b.BlackCastle
}

// Pieces returns every piece of colour in board order.
func (b *Board) Pieces(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for _, piece := range b.Squares {
		if !piece.IsEmpty() && piece.Colour == colour {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// King returns the king of colour, if it is on the board.
func (b *Board) King(colour Colour) (Piece, bool) {
	for _, piece := range b.Squares {
		if piece.Type == King && piece.Colour == colour {
			return piece, true
		}
	}
	return Piece{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Diagram draws the board as text, rank 8 first. Each rank line starts
// with its number, empty squares are dots and a file line closes it.
func (b *Board) Diagram() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('0' + BoardSize - row))
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row*BoardSize+col]
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" abcdefgh\n")
	return sb.String()
}
