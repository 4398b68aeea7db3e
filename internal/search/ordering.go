package search

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

type scoredMove struct {
	move  chess.Move
	score int
}

// MoveOrderScore ranks a move for search ordering: captures score ten
// times the victim's material minus the attacker's (most valuable victim,
// least valuable attacker), promotions add the new piece's material and
// quiet moves score zero.
func MoveOrderScore(board *chess.Board, move chess.Move) int {
	score := 0
	victim := board.Get(move.To)
	if !victim.IsEmpty() {
		aggressor := board.Get(move.From)
		score += 10*engine.MaterialValue(victim.Type) - engine.MaterialValue(aggressor.Type)
	}
	if move.IsPromotion() {
		score += engine.MaterialValue(move.Promotion)
	}
	return score
}

// OrderMoves sorts moves in place, best candidates first. Moves with equal
// scores keep their generation order.
func OrderMoves(board *chess.Board, moves []chess.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: MoveOrderScore(board, m)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(b.score, a.score)
	})
	for i, s := range scored {
		moves[i] = s.move
	}
}
