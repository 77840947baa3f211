package engine

import "github.com/lgbarn/pocketchess/internal/chess"

// isDiagonalClear checks if the diagonal path strictly between from and to is clear.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := chess.Square{File: from.File + fileDir, Rank: from.Rank + rankDir}

	for sq.File != to.File && sq.Rank != to.Rank {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq.File += fileDir
		sq.Rank += rankDir
	}

	return true
}

// isStraightClear checks if the rank or file path strictly between from and to is clear.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := chess.Square{File: from.File + fileDir, Rank: from.Rank + rankDir}

	for sq.File != to.File || sq.Rank != to.Rank {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq.File += fileDir
		sq.Rank += rankDir
	}

	return true
}
