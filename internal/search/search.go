// Package search picks moves with a fixed-depth negamax search. Root moves
// are searched in parallel, one task per move, each on its own board copy.
package search

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Result is the outcome of a root search.
type Result struct {
	Move  chess.Move
	Score int    // From the point of view of the side to move
	Nodes uint64 // Positions visited across all root tasks
	Found bool   // False when the side to move has no legal move
}

// Searcher runs root searches on a worker pool.
type Searcher struct {
	log     zerolog.Logger
	workers int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers sets how many root moves are searched at once.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// NewSearcher creates a Searcher. By default one worker per CPU is used.
func NewSearcher(log zerolog.Logger, opts ...Option) *Searcher {
	s := &Searcher{
		log:     log,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the number of root moves searched concurrently.
func (s *Searcher) Workers() int {
	return s.workers
}

// Search scores every legal move of the side to move and returns the best.
// Each reply position is searched to depth plies with a full window. Among
// equally scored moves the first in generation order wins, so repeated
// searches of the same position return the same move.
func (s *Searcher) Search(board *chess.Board, depth int) Result {
	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		s.log.Debug().Str("fen", engine.BoardToFEN(board)).Msg("no legal moves")
		return Result{}
	}

	items := make([]worker.WorkItem, 0, len(moves))
	for _, move := range moves {
		child, err := engine.WithMove(board, move)
		if err != nil {
			s.log.Warn().Err(err).Str("move", move.String()).Msg("skipping root move")
			continue
		}
		engine.InvertTurn(child)
		items = append(items, worker.WorkItem{
			Index: len(items),
			Board: child,
			Move:  move,
			Depth: depth,
		})
	}
	if len(items) == 0 {
		return Result{}
	}

	pool := worker.NewPoolWithOptions(searchRoot,
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(items)),
	)
	result := reduce(pool.Run(items))

	s.log.Debug().
		Int("depth", depth).
		Int("moves", len(items)).
		Int("workers", pool.NumWorkers()).
		Uint64("nodes", result.Nodes).
		Int("score", result.Score).
		Str("move", result.Move.String()).
		Msg("search finished")
	return result
}

// BestMove returns the best move for the side to move, or false when
// there is no legal move.
func (s *Searcher) BestMove(board *chess.Board, depth int) (chess.Move, bool) {
	result := s.Search(board, depth)
	return result.Move, result.Found
}

// BestMoveString returns the best move as move text, or the null move
// "0000" when there is no legal move.
func (s *Searcher) BestMoveString(board *chess.Board, depth int) string {
	move, ok := s.BestMove(board, depth)
	if !ok {
		return chess.NullMoveString
	}
	return move.String()
}

// searchRoot scores one root move from the mover's point of view.
func searchRoot(item worker.WorkItem) worker.ProcessResult {
	var nodes uint64
	score := -negamax(item.Board, -Infinity, Infinity, item.Depth, &nodes)
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Score: score,
		Nodes: nodes,
	}
}

// reduce picks the highest score; ties keep the earliest index.
func reduce(results []worker.ProcessResult) Result {
	if len(results) == 0 {
		return Result{}
	}
	best := results[0]
	var nodes uint64
	for _, r := range results {
		nodes += r.Nodes
		if r.Score > best.Score {
			best = r
		}
	}
	return Result{Move: best.Move, Score: best.Score, Nodes: nodes, Found: true}
}
