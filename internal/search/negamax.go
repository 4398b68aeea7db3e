package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	// MateScore is the base score of a checkmate. A mate found with d plies
	// of depth left scores -(MateScore + d) for the mated side, so quicker
	// mates rank strictly better.
	MateScore = 1_000_000

	// Infinity bounds the search window. It is finite so that negating a
	// bound never overflows.
	Infinity = 1 << 30
)

// negamax scores board for the side to move with a fail-hard alpha-beta
// window. nodes counts every position visited. A depth of zero or less
// evaluates the board without searching.
func negamax(board *chess.Board, alpha, beta, depth int, nodes *uint64) int {
	*nodes++
	if depth <= 0 {
		return engine.Evaluate(board, board.ToMove)
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		if engine.IsCheck(board) {
			return -MateScore - depth
		}
		return 0
	}

	OrderMoves(board, moves)
	for _, move := range moves {
		child, err := engine.WithMove(board, move)
		if err != nil {
			continue
		}
		engine.InvertTurn(child)

		score := -negamax(child, -beta, -alpha, depth-1, nodes)
		if score >= beta {
			return beta
		}
		alpha = max(alpha, score)
	}
	return alpha
}
