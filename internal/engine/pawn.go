package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnMoves generates pushes, double pushes from the starting row and
// diagonal captures (including en passant). Moves landing on the
// promotion row are expanded into one move per promotion piece.
func pawnMoves(board *chess.Board, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	colour := pawn.Colour

	one := pawn.Pos.UpColour(colour, 1)
	if one.IsOnBoard() && !board.IsOccupied(one) {
		moves = appendPawnMove(moves, pawn, one)

		two := pawn.Pos.UpColour(colour, 2)
		if pawn.Pos.IsPawnStartingRow(colour) && !board.IsOccupied(two) {
			moves = append(moves, chess.NewMove(pawn.Pos, two))
		}
	}

	for _, to := range [2]chess.Position{one.Left(1), one.Right(1)} {
		if !to.IsOnBoard() {
			continue
		}
		if board.IsOccupiedBy(to, colour.Opposite()) || board.IsEnPassantTarget(to) {
			moves = appendPawnMove(moves, pawn, to)
		}
	}
	return moves
}

func appendPawnMove(moves []chess.Move, pawn chess.Piece, to chess.Position) []chess.Move {
	if !to.IsPromotionRow(pawn.Colour) {
		return append(moves, chess.NewMove(pawn.Pos, to))
	}
	for _, promotion := range chess.PromotionTypes {
		moves = append(moves, chess.Move{From: pawn.Pos, To: to, Promotion: promotion})
	}
	return moves
}

// applyPawnMove handles the pawn specific parts of a move: the en passant
// capture and the two-square advance. It reports whether the move was
// fully applied; otherwise the caller places the (possibly promoted) pawn.
func applyPawnMove(board *chess.Board, pawn *chess.Piece, move chess.Move) bool {
	colour := pawn.Colour

	if board.IsEnPassantTarget(move.To) {
		// The captured pawn sits directly behind the target square.
		board.Remove(move.To.DownColour(colour, 1))
	}

	if Abs(move.To.Row-move.From.Row) == 2 {
		board.Remove(move.From)
		board.Set(move.To, *pawn)
		board.SetEnPassant(move.From.UpColour(colour, 1))
		return true
	}

	if move.IsPromotion() {
		pawn.Type = move.Promotion
	}
	return false
}
