// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/pocketchess/internal/chess"

// IsLegal reports whether the piece on from may move to to, including the
// rule that a move may not leave the mover's own king attacked.
func IsLegal(board *chess.Board, from, to chess.Square) bool {
	return IsLegalMove(board, from, to, true)
}

// Attacks reports whether the piece on from could move to to by its
// movement rules alone, ignoring the safety of its own king. Check
// detection is built on Attacks; it must never enable the king-safety
// gate or IsLegalMove and IsInCheck would recurse without end.
func Attacks(board *chess.Board, from, to chess.Square) bool {
	return IsLegalMove(board, from, to, false)
}

// IsLegalMove validates a move against the piece's movement rules. When
// enforceKingSafety is set the move is tried on the board, the mover's
// king is tested for check, and the board is restored before returning.
// Off-board squares and empty source squares are rejected, not errors.
func IsLegalMove(board *chess.Board, from, to chess.Square, enforceKingSafety bool) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	// Can't capture own piece
	target := board.Get(to)
	if target.Is(piece.Colour) {
		return false
	}

	if !canPieceMove(board, piece, from, to) {
		return false
	}

	if enforceKingSafety && leavesKingInCheck(board, piece, from, to) {
		return false
	}

	return true
}

// canPieceMove checks the movement geometry and path clearance of a piece.
func canPieceMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	fileDiff := abs(df)
	rankDiff := abs(dr)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff || fileDiff == 0 {
			return false
		}
		return isDiagonalClear(board, from, to)

	case chess.Rook:
		if (df == 0) == (dr == 0) {
			return false
		}
		return isStraightClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff && fileDiff > 0 {
			return isDiagonalClear(board, from, to)
		}
		if (df == 0) != (dr == 0) {
			return isStraightClear(board, from, to)
		}
		return false

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1 && fileDiff+rankDiff > 0
	}

	return false
}

// canPawnMove handles the single step, the double step from the starting
// rank, and the diagonal capture. There is no en passant.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := int8(chess.PawnDirection(colour))
	df := to.File - from.File
	dr := to.Rank - from.Rank
	target := board.Get(to)

	switch {
	case df == 0 && dr == dir:
		return target.IsEmpty()
	case df == 0 && dr == 2*dir:
		return int(from.Rank) == chess.PawnStartRank(colour) &&
			target.IsEmpty() &&
			board.Get(from.Offset(0, int(dir))).IsEmpty()
	case abs(df) == 1 && dr == dir:
		return !target.IsEmpty()
	}
	return false
}

// leavesKingInCheck plays the move on the live board, asks whether the
// mover's king is attacked, then puts both squares back.
func leavesKingInCheck(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	originalTarget := board.Get(to)
	board.Set(to, piece)
	board.Set(from, chess.Empty)

	inCheck := IsInCheck(board, piece.Colour)

	board.Set(from, piece)
	board.Set(to, originalTarget)

	return inCheck
}
