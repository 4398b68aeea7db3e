package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Material values in centipawns, indexed by piece type.
var materialValues = [...]int{
	chess.Empty:  0,
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// MaterialValue returns the material worth of a piece type.
func MaterialValue(pieceType chess.PieceType) int {
	if pieceType < 0 || int(pieceType) >= len(materialValues) {
		return 0
	}
	return materialValues[pieceType]
}

// Piece-square tables from White's point of view, indexed like the board
// (a8 = 0, h1 = 63). Black reads them mirrored vertically.
var (
	pawnTable = [chess.NumSquares]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightTable = [chess.NumSquares]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}

	bishopTable = [chess.NumSquares]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}

	rookTable = [chess.NumSquares]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}

	queenTable = [chess.NumSquares]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}

	kingTable = [chess.NumSquares]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
)

func pieceTable(pieceType chess.PieceType) *[chess.NumSquares]int {
	switch pieceType {
	case chess.Pawn:
		return &pawnTable
	case chess.Knight:
		return &knightTable
	case chess.Bishop:
		return &bishopTable
	case chess.Rook:
		return &rookTable
	case chess.Queen:
		return &queenTable
	case chess.King:
		return &kingTable
	default:
		return nil
	}
}

// EvaluatePiece returns the material plus positional worth of a piece on
// its current square. Empty squares are worth nothing.
func EvaluatePiece(piece chess.Piece) int {
	table := pieceTable(piece.Type)
	if table == nil || !piece.Pos.IsOnBoard() {
		return 0
	}
	row := piece.Pos.Row
	if piece.Colour == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	return MaterialValue(piece.Type) + table[row*chess.BoardSize+piece.Pos.Col]
}

// Evaluate scores the board from colour's point of view: the worth of
// colour's pieces minus the worth of the opponent's.
func Evaluate(board *chess.Board, colour chess.Colour) int {
	score := 0
	for _, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		if piece.Colour == colour {
			score += EvaluatePiece(piece)
		} else {
			score -= EvaluatePiece(piece)
		}
	}
	return score
}
