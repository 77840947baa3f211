package search

import (
	"log"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/engine"
	"github.com/lgbarn/pocketchess/internal/errors"
)

const (
	// MateScore is the score of a side delivering mate at the root. Mates
	// found deeper score one point less per ply, so faster mates win.
	MateScore = 30000

	// Infinity bounds every score the search can return.
	Infinity = 40000
)

// Result is the outcome of a root search.
type Result struct {
	Move  chess.Move
	Score int
	Nodes uint64
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithPruning enables or disables alpha-beta cutoffs. Scores and chosen
// moves are the same either way; only the node count changes.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) {
		s.pruning = enabled
	}
}

// WithLogger makes the searcher report each root search.
func WithLogger(logger *log.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// Searcher runs minimax searches on a caller-owned board. Every move it
// makes is unmade before it returns, so the board is left bit-identical.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	pruning bool
	logger  *log.Logger
	nodes   uint64
}

// NewSearcher creates a searcher with pruning enabled.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{pruning: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nodes returns the number of positions visited since the searcher was created.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Minimax scores the board from White's point of view, searching depth
// plies. maximizing is true when White is to move.
func (s *Searcher) Minimax(board *chess.Board, depth, alpha, beta int, maximizing bool) int {
	return s.minimax(board, depth, 0, alpha, beta, maximizing)
}

func (s *Searcher) minimax(board *chess.Board, depth, ply, alpha, beta int, maximizing bool) int {
	s.nodes++
	side := sideToMove(maximizing)

	if depth <= 0 {
		// A mate on the last ply must outscore material, or a depth 1
		// search could not find mate in one.
		if engine.HasLegalMoves(board, side) {
			return Evaluate(board)
		}
		return terminalScore(board, side, ply)
	}

	moves := engine.LegalMoves(board, side)
	if len(moves) == 0 {
		return terminalScore(board, side, ply)
	}

	if maximizing {
		best := -Infinity
		for _, m := range moves {
			rec := engine.MakeMove(board, m.From, m.To)
			eval := s.minimax(board, depth-1, ply+1, alpha, beta, false)
			engine.UnmakeMove(board, rec)

			best = max(best, eval)
			alpha = max(alpha, eval)
			if s.pruning && beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		rec := engine.MakeMove(board, m.From, m.To)
		eval := s.minimax(board, depth-1, ply+1, alpha, beta, true)
		engine.UnmakeMove(board, rec)

		best = min(best, eval)
		beta = min(beta, eval)
		if s.pruning && beta <= alpha {
			break
		}
	}
	return best
}

// FindBestMove searches every legal move of side and returns the best one.
// Each root move is scored with a full window; the first move enumerated
// wins ties. A depth below 1 is treated as 1.
func (s *Searcher) FindBestMove(board *chess.Board, side chess.Colour, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}

	moves := engine.LegalMoves(board, side)
	if len(moves) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoLegalMove, "%s to move", side)
	}

	start := s.nodes
	maximizing := side == chess.White
	best := Result{Move: moves[0], Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}

	for _, m := range moves {
		rec := engine.MakeMove(board, m.From, m.To)
		score := s.minimax(board, depth-1, 1, -Infinity, Infinity, !maximizing)
		engine.UnmakeMove(board, rec)

		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best.Move = m
			best.Score = score
		}
	}
	best.Nodes = s.nodes - start

	if s.logger != nil {
		s.logger.Printf("%s depth %d: %s score %d (%d moves, %d nodes)",
			side, depth, best.Move, best.Score, len(moves), best.Nodes)
	}
	return best, nil
}

// Minimax scores the board with a fresh pruning searcher.
func Minimax(board *chess.Board, depth, alpha, beta int, maximizing bool) int {
	return NewSearcher().Minimax(board, depth, alpha, beta, maximizing)
}

// FindBestMove searches with a fresh pruning searcher.
func FindBestMove(board *chess.Board, side chess.Colour, depth int) (Result, error) {
	return NewSearcher().FindBestMove(board, side, depth)
}

// IsMateScore reports whether a score announces a forced mate.
func IsMateScore(score int) bool {
	return abs(score) > MateScore-maxMatePly
}

// MatePlies returns the number of plies to the mate announced by score.
func MatePlies(score int) int {
	return MateScore - abs(score)
}

// maxMatePly is the deepest ply at which a mate score stays distinguishable
// from any material balance.
const maxMatePly = 1000

func terminalScore(board *chess.Board, side chess.Colour, ply int) int {
	if !engine.IsInCheck(board, side) {
		return 0
	}
	if side == chess.White {
		return -(MateScore - ply)
	}
	return MateScore - ply
}

func sideToMove(maximizing bool) chess.Colour {
	if maximizing {
		return chess.White
	}
	return chess.Black
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
