package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsCheck(board) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsCheck(board) && !HasLegalMoves(board)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		child, err := WithMove(board, move)
		if err != nil {
			continue
		}
		InvertTurn(child)
		nodes += Perft(child, depth-1)
	}
	return nodes
}
