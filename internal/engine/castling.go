package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// castleSquares describes one castling move on one side of the board.
type castleSquares struct {
	kingFrom, kingTo chess.Position
	rookFrom, rookTo chess.Position
	between          []chess.Position // must be empty
	transit          chess.Position   // the king passes it, so it must not be attacked
}

var (
	whiteKingside  = castleSquares{chess.E1, chess.G1, chess.H1, chess.F1, []chess.Position{chess.F1, chess.G1}, chess.F1}
	whiteQueenside = castleSquares{chess.E1, chess.C1, chess.A1, chess.D1, []chess.Position{chess.D1, chess.C1, chess.B1}, chess.D1}
	blackKingside  = castleSquares{chess.E8, chess.G8, chess.H8, chess.F8, []chess.Position{chess.F8, chess.G8}, chess.F8}
	blackQueenside = castleSquares{chess.E8, chess.C8, chess.A8, chess.D8, []chess.Position{chess.D8, chess.C8, chess.B8}, chess.D8}
)

func castleSides(colour chess.Colour) (kingside, queenside castleSquares) {
	if colour == chess.White {
		return whiteKingside, whiteQueenside
	}
	return blackKingside, blackQueenside
}

// castlingMoves returns the castling candidates of king. Whether the king
// ends up attacked on its destination is left to the legality filter.
func castlingMoves(board *chess.Board, king chess.Piece) []chess.Move {
	rights := *board.Castle(king.Colour)
	kingside, queenside := castleSides(king.Colour)
	if !rights.CanCastle() || king.Pos != kingside.kingFrom {
		return nil
	}
	if IsAttacked(board, king) {
		return nil
	}

	var moves []chess.Move
	if rights.Kingside && canCastleThrough(board, king, kingside) {
		moves = append(moves, chess.NewMove(kingside.kingFrom, kingside.kingTo))
	}
	if rights.Queenside && canCastleThrough(board, king, queenside) {
		moves = append(moves, chess.NewMove(queenside.kingFrom, queenside.kingTo))
	}
	return moves
}

func canCastleThrough(board *chess.Board, king chess.Piece, side castleSquares) bool {
	for _, sq := range side.between {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return !IsAttacked(board, king.At(side.transit))
}

// castlingFor returns the castling move matching a king move, if the mover
// still holds the right for it.
func castlingFor(board *chess.Board, king chess.Piece, move chess.Move) (castleSquares, bool) {
	rights := *board.Castle(king.Colour)
	kingside, queenside := castleSides(king.Colour)
	switch {
	case rights.Kingside && move.From == kingside.kingFrom && move.To == kingside.kingTo:
		return kingside, true
	case rights.Queenside && move.From == queenside.kingFrom && move.To == queenside.kingTo:
		return queenside, true
	}
	return castleSquares{}, false
}

// applyCastle relocates king and rook. The board is untouched when the rook
// is missing from its corner.
func applyCastle(board *chess.Board, king chess.Piece, move chess.Move, side castleSquares) error {
	if !board.HasPiece(side.rookFrom, chess.Rook, king.Colour) {
		return &errors.StateError{
			Err:    errors.ErrIllegalState,
			Move:   move.String(),
			Reason: "no rook on " + side.rookFrom.String(),
		}
	}

	rook := board.Take(side.rookFrom)
	board.Remove(side.kingFrom)
	board.Set(side.kingTo, king)
	board.Set(side.rookTo, rook)

	board.Castle(king.Colour).Off()
	board.ClearEnPassant()
	return nil
}

// updateCastlingRightsForRook removes the right tied to a rook's home corner
// when the rook leaves it or is captured there.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, pos chess.Position) {
	kingside, queenside := castleSides(colour)
	rights := board.Castle(colour)
	switch pos {
	case kingside.rookFrom:
		rights.Kingside = false
	case queenside.rookFrom:
		rights.Queenside = false
	}
}
