package engine

import "github.com/lgbarn/pocketchess/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first legal move found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range chess.ScanOrder {
		if !board.Get(from).Is(colour) {
			continue
		}
		for _, to := range chess.ScanOrder {
			if IsLegal(board, from, to) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for the given colour. Sources and
// destinations are both visited in chess.ScanOrder; search relies on this
// order to break ties.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range chess.ScanOrder {
		if !board.Get(from).Is(colour) {
			continue
		}
		moves = appendPieceMoves(board, from, moves)
	}
	return moves
}

// PieceMoves returns the legal moves of the piece on the given square.
func PieceMoves(board *chess.Board, from chess.Square) []chess.Move {
	return appendPieceMoves(board, from, nil)
}

// appendPieceMoves appends the legal moves of the piece on from.
func appendPieceMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	for _, to := range chess.ScanOrder {
		if IsLegal(board, from, to) {
			moves = append(moves, describeMove(board, from, to))
		}
	}
	return moves
}

// describeMove builds the record of a move without playing it.
func describeMove(board *chess.Board, from, to chess.Square) chess.Move {
	piece := board.Get(from)
	move := chess.Move{
		From:       from,
		To:         to,
		Piece:      piece,
		Captured:   board.Get(to),
		PrevRights: board.Rights,
	}
	if piece.Kind == chess.Pawn && int(to.Rank) == chess.PromotionRank(piece.Colour) {
		move.IsPromotion = true
		move.Promotion = chess.MakePiece(piece.Colour, chess.Queen)
	}
	return move
}
