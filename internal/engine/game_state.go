package engine

import "github.com/lgbarn/pocketchess/internal/chess"

// Classify returns the status of the position for the given colour, the
// side to move. Nothing is cached: every call recomputes check and
// mobility from the board.
func Classify(board *chess.Board, colour chess.Colour) chess.Status {
	inCheck := IsInCheck(board, colour)
	canMove := HasLegalMoves(board, colour)

	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case !canMove:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.Playing
	}
}
