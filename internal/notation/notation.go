// Package notation converts engine moves to and from text.
package notation

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/engine"
	"github.com/lgbarn/pocketchess/internal/errors"
)

// UCI returns the move in UCI long algebraic form.
func UCI(m chess.Move) string {
	return m.String()
}

// ParseUCI parses a UCI move such as "e2e4" or "e7e8q" into its squares.
// Only queen promotions exist here, so a promotion suffix must be 'q'.
func ParseUCI(s string) (from, to chess.Square, err error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	if len(s) == 5 && s[4] != 'q' {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("move %q: only queen promotion: %w", s, errors.ErrIllegalMove)
	}
	if from, err = chess.ParseSquare(s[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	if to, err = chess.ParseSquare(s[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}

// SAN renders a move in Standard Algebraic Notation for the position
// before the move, with toMove to play. The move must be legal there.
func SAN(board *chess.Board, toMove chess.Colour, m chess.Move) (string, error) {
	opt, err := nchess.FEN(engine.BoardToFEN(board, toMove))
	if err != nil {
		return "", errors.Wrap(err, "notation")
	}
	game := nchess.NewGame(opt)

	promo := nchess.NoPieceType
	if m.IsPromotion {
		promo = nchess.Queen
	}
	for _, mv := range game.ValidMoves() {
		if mv.S1().String() == m.From.String() && mv.S2().String() == m.To.String() && mv.Promo() == promo {
			return nchess.AlgebraicNotation{}.Encode(game.Position(), mv), nil
		}
	}
	return "", errors.Wrapf(errors.ErrIllegalMove, "%s to move: %s", toMove, m)
}

// Line renders a sequence of moves played from board, with toMove to play
// first, as numbered SAN: "1. e4 e5 2. Nf3". The board is not modified.
func Line(board *chess.Board, toMove chess.Colour, moves []chess.Move) (string, error) {
	b := board.Copy()
	side := toMove
	number := 1
	var sb strings.Builder

	for i, m := range moves {
		san, err := SAN(b, side, m)
		if err != nil {
			return "", errors.Wrapf(err, "ply %d", i+1)
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case side == chess.White:
			fmt.Fprintf(&sb, "%d. ", number)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(san)

		engine.MakeMove(b, m.From, m.To)
		if side == chess.Black {
			number++
		}
		side = side.Opposite()
	}
	return sb.String(), nil
}
