package engine

import "github.com/lgbarn/pocketchess/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakePiece(colour, chess.King)
	for _, sq := range chess.ScanOrder {
		if board.Get(sq) == king {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
// Attacks are tested with the king-safety gate disabled.
func IsSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for _, sq := range chess.ScanOrder {
		if !board.Get(sq).Is(byColour) {
			continue
		}
		if Attacks(board, sq, target) {
			return true
		}
	}
	return false
}
