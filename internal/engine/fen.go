// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of whitespace separated fields a FEN must carry.
const fenFields = 6

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board from a FEN string.
// The halfmove clock and fullmove number must be integers but are not kept.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Field:    "field count",
			Expected: strconv.Itoa(fenFields),
			Got:      strconv.Itoa(len(parts)),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    placement,
			Field:    "rank count",
			Expected: strconv.Itoa(chess.BoardSize),
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				if col > chess.BoardSize {
					return rankOverflow(placement, row)
				}
				continue
			}

			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Input:    placement,
					Field:    "piece placement",
					Expected: "piece letter or digit",
					Got:      fmt.Sprintf("%q", c),
				}
			}
			if col >= chess.BoardSize {
				return rankOverflow(placement, row)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			pos := chess.Position{Row: row, Col: col}
			board.Set(pos, chess.NewPiece(piece, pos, colour))
			col++
		}
	}
	return nil
}

func rankOverflow(placement string, row int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    placement,
		Field:    fmt.Sprintf("rank %d", chess.BoardSize-row),
		Expected: "at most 8 squares",
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    field,
			Field:    "side to move",
			Expected: "w or b",
			Got:      field,
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			board.WhiteCastle.Kingside = true
		case 'Q':
			board.WhiteCastle.Queenside = true
		case 'k':
			board.BlackCastle.Kingside = true
		case 'q':
			board.BlackCastle.Queenside = true
		default:
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    field,
				Field:    "castling",
				Expected: "K, Q, k, q or -",
				Got:      string(c),
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	pos, err := chess.ParsePosition(field)
	if err != nil {
		return fmt.Errorf("%w: en passant: %w", errors.ErrInvalidFEN, err)
	}
	board.SetEnPassant(pos)
	return nil
}

// parseClocks checks the halfmove clock and fullmove number fields.
func parseClocks(halfmove, fullmove string) error {
	for _, f := range []struct{ name, value string }{
		{"halfmove clock", halfmove},
		{"fullmove number", fullmove},
	} {
		if _, err := strconv.Atoi(f.value); err != nil {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    f.value,
				Field:    f.name,
				Expected: "integer",
				Got:      f.value,
			}
		}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
// Clocks are not tracked, so they are always written as "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Position{Row: row, Col: col})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.WhiteCastle.CanCastle() && !board.BlackCastle.CanCastle() {
		sb.WriteByte('-')
		return
	}
	if board.WhiteCastle.Kingside {
		sb.WriteByte('K')
	}
	if board.WhiteCastle.Queenside {
		sb.WriteByte('Q')
	}
	if board.BlackCastle.Kingside {
		sb.WriteByte('k')
	}
	if board.BlackCastle.Queenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
