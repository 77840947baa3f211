// Package search picks moves with a depth-limited minimax search and
// alpha-beta pruning over a material-only evaluation.
package search

import "github.com/lgbarn/pocketchess/internal/chess"

// pieceValues is indexed by chess.Kind.
var pieceValues = [chess.NumKinds]int{
	chess.None:   0,
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(kind chess.Kind) int {
	if kind >= chess.NumKinds {
		return 0
	}
	return pieceValues[kind]
}

// Evaluate returns the static material balance of the board: positive
// favours White, negative favours Black.
func Evaluate(board *chess.Board) int {
	score := 0
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			if p.Colour == chess.White {
				score += pieceValues[p.Kind]
			} else {
				score -= pieceValues[p.Kind]
			}
		}
	}
	return score
}
