package chess

import "strings"

// CastlingRights records whether kings and corner rooks have moved.
// The flags are maintained on every move but no castling move is generated
// from them.
type CastlingRights struct {
	WhiteKingMoved      bool
	WhiteRookLeftMoved  bool // a-file rook
	WhiteRookRightMoved bool // h-file rook
	BlackKingMoved      bool
	BlackRookLeftMoved  bool
	BlackRookRightMoved bool
}

// KingMoved reports whether the king of the given colour has moved.
func (r CastlingRights) KingMoved(colour Colour) bool {
	if colour == White {
		return r.WhiteKingMoved
	}
	return r.BlackKingMoved
}

// RookMoved reports whether the rook of the given colour that started on
// the a-file (left) or h-file (right) has moved.
func (r CastlingRights) RookMoved(colour Colour, left bool) bool {
	switch {
	case colour == White && left:
		return r.WhiteRookLeftMoved
	case colour == White:
		return r.WhiteRookRightMoved
	case left:
		return r.BlackRookLeftMoved
	default:
		return r.BlackRookRightMoved
	}
}

// MarkKingMoved records a king move for the given colour.
func (r *CastlingRights) MarkKingMoved(colour Colour) {
	if colour == White {
		r.WhiteKingMoved = true
	} else {
		r.BlackKingMoved = true
	}
}

// MarkRookMoved records a corner rook move for the given colour.
func (r *CastlingRights) MarkRookMoved(colour Colour, left bool) {
	switch {
	case colour == White && left:
		r.WhiteRookLeftMoved = true
	case colour == White:
		r.WhiteRookRightMoved = true
	case left:
		r.BlackRookLeftMoved = true
	default:
		r.BlackRookRightMoved = true
	}
}

// AllMoved returns rights with every flag set, i.e. no castling possible.
func AllMoved() CastlingRights {
	return CastlingRights{
		WhiteKingMoved: true, WhiteRookLeftMoved: true, WhiteRookRightMoved: true,
		BlackKingMoved: true, BlackRookLeftMoved: true, BlackRookRightMoved: true,
	}
}

// Board is an 8x8 grid of pieces plus castling bookkeeping.
// Boards are plain values: == compares them square by square.
type Board struct {
	// Squares is indexed [file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Rights tracks king and rook movement.
	Rights CastlingRights
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][WhiteHomeRank] = W(backRank[file])
		b.Squares[file][WhitePawnRank] = W(Pawn)
		b.Squares[file][BlackPawnRank] = B(Pawn)
		b.Squares[file][BlackHomeRank] = B(backRank[file])
	}
	b.Rights = CastlingRights{}
}

// Clear removes every piece and resets the rights.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	b.Rights = CastlingRights{}
}

// Get returns the piece on the given square, or Empty when the square is
// off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	want := MakePiece(colour, kind)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank] == want {
				n++
			}
		}
	}
	return n
}

// String draws the board as eight lines of FEN letters, eighth rank first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[file][rank]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
