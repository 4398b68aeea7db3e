package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// PieceMoves returns the pseudo-legal moves of piece: moves that follow the
// piece's movement rules but may leave its own king in check.
func PieceMoves(board *chess.Board, piece chess.Piece) []chess.Move {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Knight:
		return stepMoves(board, piece, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(board, piece, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(board, piece, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(board, piece, diagonalDirs[:])
		return append(moves, slidingMoves(board, piece, straightDirs[:])...)
	case chess.King:
		moves := stepMoves(board, piece, kingOffsets[:])
		return append(moves, castlingMoves(board, piece)...)
	default:
		return nil
	}
}

// PseudoLegalMoves returns the pseudo-legal moves of every piece of the
// side to move, in board order.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for _, piece := range board.Pieces(board.ToMove) {
		moves = append(moves, PieceMoves(board, piece)...)
	}
	return moves
}

// stepMoves generates single-step moves (knight, king) onto squares not
// held by the mover's own colour.
func stepMoves(board *chess.Board, piece chess.Piece, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range offsets {
		to := offset(piece.Pos, d)
		if !to.IsOnBoard() || board.IsOccupiedBy(to, piece.Colour) {
			continue
		}
		moves = append(moves, chess.NewMove(piece.Pos, to))
	}
	return moves
}

// slidingMoves casts a ray in each direction until it leaves the board,
// meets a friendly piece (excluded) or captures an enemy piece (included).
func slidingMoves(board *chess.Board, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		for to := offset(piece.Pos, d); to.IsOnBoard(); to = offset(to, d) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(piece.Pos, to))
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, chess.NewMove(piece.Pos, to))
			}
			break // Blocked
		}
	}
	return moves
}
