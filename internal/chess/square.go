package chess

import (
	"fmt"

	"github.com/lgbarn/pocketchess/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int8
	Rank int8
}

// NoSquare marks the absence of a square (no selection, no king found).
var NoSquare = Square{File: -1, Rank: -1}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: int8(file), Rank: int8(rank)}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + int8(df), Rank: s.Rank + int8(dr)}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	sq := Sq(int(name[0]-'a'), int(name[1]-'1'))
	if name[0] < 'a' || name[1] < '1' || !sq.Valid() {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on error. Intended for
// constant square names.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// ScanOrder lists every square in enumeration order: from the eighth rank
// down to the first, a-file to h-file within each rank. Move generation
// visits source and destination squares in this order.
var ScanOrder = func() [BoardSize * BoardSize]Square {
	var order [BoardSize * BoardSize]Square
	i := 0
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			order[i] = Sq(file, rank)
			i++
		}
	}
	return order
}()
