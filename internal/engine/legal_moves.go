package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// LegalMoves returns the moves of the side to move that do not leave its
// own king attacked. Moves that cannot be applied to this board (such as
// castling without a rook) are dropped.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if isLegal(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range PseudoLegalMoves(board) {
		if isLegal(board, move) {
			return true
		}
	}
	return false
}

// isLegal tries move on a copy and checks that the mover's king is safe.
func isLegal(board *chess.Board, move chess.Move) bool {
	next, err := WithMove(board, move)
	if err != nil {
		return false
	}
	return !IsInCheck(next, board.ToMove)
}

// ParseLegalMove decodes move text and checks that it is one of the legal
// moves of the side to move.
func ParseLegalMove(board *chess.Board, text string) (chess.Move, error) {
	move, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	for _, legal := range LegalMoves(board) {
		if legal == move {
			return move, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s in %s", text, BoardToFEN(board))
}
