// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type without colour.
type Kind uint8

const (
	None Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// MakePiece creates a piece of the given colour and kind.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == None {
		return Empty
	}
	return Piece{Kind: kind, Colour: colour}
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p is a non-empty piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p.Kind != None && p.Colour == colour
}

// Letter returns the FEN letter: uppercase for white, lowercase for black,
// space for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Kind != None && p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board dimensions and home ranks. Ranks are 0-based: rank 0 is the first rank.
const (
	BoardSize = 8

	WhiteHomeRank = 0
	BlackHomeRank = BoardSize - 1

	WhitePawnRank = 1
	BlackPawnRank = BoardSize - 2
)

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank from which a pawn may advance two squares.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}

// PromotionRank returns the farthest rank for pawns of the given colour.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BlackHomeRank
	}
	return WhiteHomeRank
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return WhiteHomeRank
	}
	return BlackHomeRank
}

// Status classifies a position for the side to move.
type Status int

const (
	Playing Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves are possible.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// InProgress reports whether the side to move is expected to move.
func (s Status) InProgress() bool {
	return s == Playing || s == Check
}
