package engine

import (
	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/errors"
)

// MakeMove plays the piece on from to to and returns the record needed to
// revert it. The move is not validated. A pawn reaching the far rank is
// promoted to a queen; king and corner rook moves update the castling
// bookkeeping.
func MakeMove(board *chess.Board, from, to chess.Square) chess.Move {
	move := describeMove(board, from, to)

	updateCastlingRights(board, move.Piece, from)

	placed := move.Piece
	if move.IsPromotion {
		placed = move.Promotion
	}
	board.Set(to, placed)
	board.Set(from, chess.Empty)

	return move
}

// UnmakeMove reverts a move made by MakeMove. The moved piece (the pawn, for
// a promotion), the captured piece and the castling bookkeeping are all
// restored exactly.
func UnmakeMove(board *chess.Board, move chess.Move) {
	board.Set(move.From, move.Piece)
	board.Set(move.To, move.Captured)
	board.Rights = move.PrevRights
}

// updateCastlingRights records king moves and moves of a rook off its
// starting corner.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from chess.Square) {
	switch piece.Kind {
	case chess.King:
		board.Rights.MarkKingMoved(piece.Colour)
	case chess.Rook:
		if int(from.Rank) != chess.HomeRank(piece.Colour) {
			return
		}
		if from.File == 0 {
			board.Rights.MarkRookMoved(piece.Colour, true)
		}
		if from.File == chess.BoardSize-1 {
			board.Rights.MarkRookMoved(piece.Colour, false)
		}
	}
}

// History is an append-only stack of executed moves supporting single-step undo.
type History struct {
	moves []chess.Move
}

// Push appends a move.
func (h *History) Push(move chess.Move) {
	h.moves = append(h.moves, move)
}

// Pop removes and returns the last move.
func (h *History) Pop() (chess.Move, bool) {
	if len(h.moves) == 0 {
		return chess.Move{}, false
	}
	move := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return move, true
}

// Last returns the last move without removing it.
func (h *History) Last() (chess.Move, bool) {
	if len(h.moves) == 0 {
		return chess.Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// Len returns the number of moves recorded.
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the recorded moves, oldest first.
func (h *History) Moves() []chess.Move {
	out := make([]chess.Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// Clear discards all recorded moves.
func (h *History) Clear() {
	h.moves = h.moves[:0]
}

// Apply makes the move and appends it to the history.
func Apply(board *chess.Board, history *History, from, to chess.Square) chess.Move {
	move := MakeMove(board, from, to)
	history.Push(move)
	return move
}

// Play validates the move for the given colour and applies it.
// An illegal move leaves the board and history untouched.
func Play(board *chess.Board, history *History, colour chess.Colour, from, to chess.Square) (chess.Move, error) {
	if !board.Get(from).Is(colour) || !IsLegal(board, from, to) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s to move: %s%s", colour, from, to)
	}
	return Apply(board, history, from, to), nil
}

// Undo reverts the last move in the history. With an empty history the
// board is left as it is and ErrEmptyHistory is returned.
func Undo(board *chess.Board, history *History) error {
	move, ok := history.Pop()
	if !ok {
		return errors.WithStack(errors.ErrEmptyHistory)
	}
	UnmakeMove(board, move)
	return nil
}
