package chess

// Move is a single executed or candidate move. It carries enough state to
// be reverted exactly: the captured piece, the piece that moved (a pawn
// even when it promoted) and the castling bookkeeping before the move.
type Move struct {
	From Square
	To   Square

	// The piece that moved, as it stood on From.
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// Whether a pawn reached the far rank, and what it became.
	IsPromotion bool
	Promotion   Piece

	// Castling bookkeeping before the move was made.
	PrevRights CastlingRights
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += string(rune(m.Promotion.Kind.Letter() + 'a' - 'A'))
	}
	return s
}
