package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// Well-known positions used across package tests.
const (
	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#, White to move.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// QueenStalemateFEN: Black king on h8 boxed in by the queen on g6,
	// Black to move and not in check.
	QueenStalemateFEN = "7k/8/6Q1/8/8/8/8/K7 b - - 0 1"

	// MateInOneFEN: White plays Ra8#.
	MateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

	// BlackMateInOneFEN: Black mates with Qxh2, the queen covered by the knight.
	BlackMateInOneFEN = "6k1/8/8/8/8/5n1q/6PP/7K b - - 0 1"

	// MidgameFEN is a quiet Italian-game position without castling rights.
	MidgameFEN = "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w - - 0 1"

	// KingsOnlyFEN is a bare-kings position.
	KingsOnlyFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"

	// NoBlackKingFEN has no black king at all.
	NoBlackKingFEN = "8/8/8/8/8/8/8/R3K3 w - - 0 1"
)

// Diagram builds a board from eight rows of FEN letters, eighth rank first,
// using '.' for empty squares. Whitespace inside a row is ignored. The
// castling flags are all set, so no castling right is implied.
func Diagram(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("Diagram: got %d rows, want %d", len(rows), chess.BoardSize)
	}

	board := chess.NewBoard()
	board.Rights = chess.AllMoved()
	for i, row := range rows {
		row = strings.Join(strings.Fields(row), "")
		if len(row) != chess.BoardSize {
			t.Fatalf("Diagram: row %d %q has %d squares", i, row, len(row))
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			board.Set(chess.Sq(file, rank), pieceFromLetter(t, row[file]))
		}
	}
	return board
}

func pieceFromLetter(t *testing.T, c byte) chess.Piece {
	t.Helper()
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if kind.Letter() == c {
			return chess.MakePiece(colour, kind)
		}
	}
	if c != '.' {
		t.Fatalf("Diagram: unknown piece letter %q", c)
	}
	return chess.Empty
}

// Sq parses an algebraic square name, failing the test on error.
func Sq(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("Sq(%q): %v", name, err)
	}
	return sq
}
