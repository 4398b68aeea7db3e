package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Direction vectors as {row, col} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

func offset(pos chess.Position, d [2]int) chess.Position {
	return chess.Position{Row: pos.Row + d[0], Col: pos.Col + d[1]}
}

// IsCheck returns true if the king of the side to move is attacked.
// A board without that king is never in check.
func IsCheck(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove)
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour)
	if !ok {
		return false
	}
	return IsAttacked(board, king)
}

// IsAttacked returns true if any piece of the opposite colour attacks
// the square piece stands on. The piece need not actually be on the
// board: probing piece.At(sq) asks whether sq is safe for it.
func IsAttacked(board *chess.Board, piece chess.Piece) bool {
	pos := piece.Pos
	enemy := piece.Colour.Opposite()

	// Enemy pawns attack from one row ahead of us.
	ahead := pos.UpColour(piece.Colour, 1)
	if board.HasPiece(ahead.Left(1), chess.Pawn, enemy) || board.HasPiece(ahead.Right(1), chess.Pawn, enemy) {
		return true
	}

	for _, d := range knightOffsets {
		if board.HasPiece(offset(pos, d), chess.Knight, enemy) {
			return true
		}
	}

	for _, d := range kingOffsets {
		if board.HasPiece(offset(pos, d), chess.King, enemy) {
			return true
		}
	}

	if rayAttacked(board, pos, enemy, diagonalDirs[:], chess.Bishop) {
		return true
	}
	return rayAttacked(board, pos, enemy, straightDirs[:], chess.Rook)
}

// rayAttacked walks each direction to the first occupied square and reports
// whether it holds an enemy slider of type slider or an enemy queen.
func rayAttacked(board *chess.Board, pos chess.Position, enemy chess.Colour, dirs [][2]int, slider chess.PieceType) bool {
	for _, d := range dirs {
		for sq := offset(pos, d); sq.IsOnBoard(); sq = offset(sq, d) {
			occupant := board.Get(sq)
			if occupant.IsEmpty() {
				continue
			}
			if occupant.Colour == enemy && (occupant.Type == slider || occupant.Type == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
