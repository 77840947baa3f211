package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   chess.Status
	}{
		{"initial white", InitialFEN, chess.White, chess.Playing},
		{"initial black", InitialFEN, chess.Black, chess.Playing},
		{"fool's mate", testutil.FoolsMateFEN, chess.White, chess.Checkmate},
		{"fool's mate winner", testutil.FoolsMateFEN, chess.Black, chess.Playing},
		{"queen stalemate", testutil.QueenStalemateFEN, chess.Black, chess.Stalemate},
		{"rook not checking", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", chess.Black, chess.Playing},
		{"rook check on file", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", chess.Black, chess.Check},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", chess.Black, chess.Checkmate},
		{"bare kings", testutil.KingsOnlyFEN, chess.White, chess.Playing},
		{"missing king", testutil.NoBlackKingFEN, chess.Black, chess.Stalemate},
		{"missing king, side with king", testutil.NoBlackKingFEN, chess.White, chess.Playing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN(tt.fen)
			require.NoError(t, err)
			before := *board

			got := Classify(board, tt.colour)
			assert.Equal(t, tt.want, got, "Classify(%s)", tt.colour)
			testutil.AssertBoardEqual(t, board, &before, "classification must not modify the board")
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"fool's mate", testutil.FoolsMateFEN, chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn does not check straight ahead", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"white pawn checks upward", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"knight check", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4RK2 b - - 0 1", chess.Black, false},
		{"no king", testutil.NoBlackKingFEN, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN(tt.fen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsInCheck(board, tt.colour))
		})
	}
}

func TestIsInCheck_PinnedAttackerStillGivesCheck(t *testing.T) {
	// The d7 bishop is pinned to its own king by the b5 bishop, yet it
	// still delivers check: attack detection ignores the attacker's own
	// king safety.
	board := testutil.Diagram(t,
		"....k...",
		"...b....",
		"........",
		".B......",
		"........",
		"........",
		"........",
		"....K...",
	)
	assert.False(t, IsLegal(board, testutil.Sq(t, "d7"), testutil.Sq(t, "h3")), "pinned bishop")

	board.Set(testutil.Sq(t, "e1"), chess.Empty)
	board.Set(testutil.Sq(t, "h3"), chess.W(chess.King))
	assert.True(t, IsInCheck(board, chess.White), "pinned bishop still checks")
}

func TestFindKing(t *testing.T) {
	board := chess.NewInitialBoard()

	sq, ok := FindKing(board, chess.White)
	assert.True(t, ok)
	assert.Equal(t, "e1", sq.String())

	sq, ok = FindKing(board, chess.Black)
	assert.True(t, ok)
	assert.Equal(t, "e8", sq.String())

	board.Set(sq, chess.Empty)
	sq, ok = FindKing(board, chess.Black)
	assert.False(t, ok)
	assert.Equal(t, chess.NoSquare, sq)
}

func TestLegalMoves_Counts(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   int
	}{
		{"initial white", InitialFEN, chess.White, 20},
		{"initial black", InitialFEN, chess.Black, 20},
		{"fool's mate", testutil.FoolsMateFEN, chess.White, 0},
		{"stalemate", testutil.QueenStalemateFEN, chess.Black, 0},
		{"bare kings", testutil.KingsOnlyFEN, chess.White, 5},
		{"kiwipete without castling", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1", chess.White, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN(tt.fen)
			require.NoError(t, err)
			moves := LegalMoves(board, tt.colour)
			assert.Equal(t, tt.want, len(moves))
			assert.Equal(t, tt.want > 0, HasLegalMoves(board, tt.colour))
		})
	}
}

func TestLegalMoves_ScanOrder(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := LegalMoves(board, chess.White)

	// Sources are visited from the eighth rank down, files a to h, so the
	// second rank pawns come before the first rank knights.
	first := moves[0]
	assert.Equal(t, "a2a4", first.String())
	last := moves[len(moves)-1]
	assert.Equal(t, "g1h3", last.String())

	knight := PieceMoves(board, testutil.Sq(t, "b1"))
	got := []string{knight[0].String(), knight[1].String()}
	assert.Equal(t, []string{"b1a3", "b1c3"}, got)
}
