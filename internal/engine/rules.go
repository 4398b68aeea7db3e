package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has mating
// material:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on same colour squares)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece

	for _, piece := range board.Squares {
		switch piece.Type {
		case chess.Empty, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		if piece.Colour == chess.White {
			whiteMinors = append(whiteMinors, piece)
		} else {
			blackMinors = append(blackMinors, piece)
		}
	}

	switch {
	case len(whiteMinors) == 0 && len(blackMinors) == 0:
		return true
	case len(whiteMinors)+len(blackMinors) == 1:
		// A lone bishop or knight.
		return true
	case len(whiteMinors) == 1 && len(blackMinors) == 1:
		w, b := whiteMinors[0], blackMinors[0]
		return w.Type == chess.Bishop && b.Type == chess.Bishop &&
			isLightSquare(w.Pos) == isLightSquare(b.Pos)
	}
	return false
}

// isLightSquare returns true if pos is a light square (a8 and h1 are light).
func isLightSquare(pos chess.Position) bool {
	return (pos.Row+pos.Col)%2 == 0
}
