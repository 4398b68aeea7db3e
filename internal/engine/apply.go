package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ApplyMove applies a move to the board in place without changing the side
// to move. Moves are not checked for legality. An error is returned when
// the source square is empty or when castling finds its rook missing; in
// both cases the board is left unchanged.
func ApplyMove(board *chess.Board, move chess.Move) error {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return errors.Wrapf(errors.ErrIllegalMove, "%s: no piece on %s", move, move.From)
	}

	switch piece.Type {
	case chess.King:
		if side, ok := castlingFor(board, piece, move); ok {
			return applyCastle(board, piece, move, side)
		}
		board.Castle(piece.Colour).Off()

	case chess.Rook:
		updateCastlingRightsForRook(board, piece.Colour, move.From)

	case chess.Pawn:
		if applyPawnMove(board, &piece, move) {
			return nil
		}
	}

	captured := board.Get(move.To)
	if captured.Type == chess.Rook && captured.Colour != piece.Colour {
		updateCastlingRightsForRook(board, captured.Colour, move.To)
	}

	board.Remove(move.From)
	board.Set(move.To, piece)
	board.ClearEnPassant()
	return nil
}

// MakeMove applies move and passes the turn to the other side.
func MakeMove(board *chess.Board, move chess.Move) error {
	if err := ApplyMove(board, move); err != nil {
		return err
	}
	InvertTurn(board)
	return nil
}

// WithMove returns a copy of board with move applied. The side to move is
// not changed and board itself is never modified.
func WithMove(board *chess.Board, move chess.Move) (*chess.Board, error) {
	next := board.Copy()
	if err := ApplyMove(next, move); err != nil {
		return nil, err
	}
	return next, nil
}

// InvertTurn passes the turn to the other side.
func InvertTurn(board *chess.Board) {
	board.ToMove = board.ToMove.Opposite()
}
