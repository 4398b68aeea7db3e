package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// PositionRequest names a position: a FEN (the initial position when
// empty) followed by moves played from it.
type PositionRequest struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
}

// BestMoveRequest asks for a search. A nil Depth uses the configured default.
type BestMoveRequest struct {
	PositionRequest
	Depth *int `json:"depth"`
}

// BestMoveResponse is the result of a search. BestMove is "0000" when the
// side to move has no legal move.
type BestMoveResponse struct {
	BestMove string `json:"bestmove"`
	Score    int    `json:"score"`
	Nodes    uint64 `json:"nodes"`
	Depth    int    `json:"depth"`
	FEN      string `json:"fen"`
}

// LegalResponse lists the legal moves of a position and its game state.
// InsufficientMaterial reports that neither side can force mate.
type LegalResponse struct {
	Moves                []string `json:"moves"`
	Check                bool     `json:"check"`
	Checkmate            bool     `json:"checkmate"`
	Stalemate            bool     `json:"stalemate"`
	InsufficientMaterial bool     `json:"insufficient_material"`
	FEN                  string   `json:"fen"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) bestMove(c *fiber.Ctx) error {
	var req BestMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	depth := s.cfg.Search.Depth
	if req.Depth != nil {
		depth = *req.Depth
	}
	if depth < 0 || depth > s.cfg.Search.MaxDepth {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("depth %d outside [0, %d]", depth, s.cfg.Search.MaxDepth))
	}

	board, err := req.board()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result := s.searcher.Search(board, depth)
	resp := BestMoveResponse{
		BestMove: chess.NullMoveString,
		Score:    result.Score,
		Nodes:    result.Nodes,
		Depth:    depth,
		FEN:      engine.BoardToFEN(board),
	}
	if result.Found {
		resp.BestMove = result.Move.String()
	}

	s.log.Info().
		Str("rid", requestID(c)).
		Int("depth", depth).
		Uint64("nodes", result.Nodes).
		Int("score", result.Score).
		Str("move", resp.BestMove).
		Msg("search")
	return c.JSON(resp)
}

func (s *Server) legal(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	board, err := req.board()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	moves := engine.LegalMoves(board)
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	return c.JSON(LegalResponse{
		Moves:                texts,
		Check:                engine.IsCheck(board),
		Checkmate:            engine.IsCheckmate(board),
		Stalemate:            engine.IsStalemate(board),
		InsufficientMaterial: engine.HasInsufficientMaterial(board),
		FEN:                  engine.BoardToFEN(board),
	})
}

// board decodes the position and plays the requested moves, each of which
// must be legal.
func (r PositionRequest) board() (*chess.Board, error) {
	var board *chess.Board
	if r.FEN == "" {
		board = engine.NewInitialBoard()
	} else {
		b, err := engine.NewBoardFromFEN(r.FEN)
		if err != nil {
			return nil, err
		}
		board = b
	}

	for _, text := range r.Moves {
		move, err := engine.ParseLegalMove(board, text)
		if err != nil {
			return nil, err
		}
		if err := engine.MakeMove(board, move); err != nil {
			return nil, err
		}
	}
	return board, nil
}
