package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.None
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. The en passant field and clocks are accepted but ignored.
// Positions without a king are accepted.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) (*chess.Board, chess.Colour) {
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board, toMove
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.None {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			board.Set(chess.Sq(file, rank), chess.MakePiece(colour, kind))
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves when absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights maps the castling availability field onto the
// moved-piece flags: a missing right marks its rook as moved, and a side
// with neither right has its king marked as moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Rights = chess.AllMoved()

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Rights.WhiteKingMoved = false
			board.Rights.WhiteRookRightMoved = false
		case 'Q':
			board.Rights.WhiteKingMoved = false
			board.Rights.WhiteRookLeftMoved = false
		case 'k':
			board.Rights.BlackKingMoved = false
			board.Rights.BlackRookRightMoved = false
		case 'q':
			board.Rights.BlackKingMoved = false
			board.Rights.BlackRookLeftMoved = false
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// BoardToFEN converts a board and side to move to a FEN string.
// En passant is never available and the clocks are always "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is written only when its flags are clear and the king and rook
// still stand on their starting squares.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, c := range []struct {
		colour chess.Colour
		left   bool
		letter byte
	}{
		{chess.White, false, 'K'},
		{chess.White, true, 'Q'},
		{chess.Black, false, 'k'},
		{chess.Black, true, 'q'},
	} {
		if canStillCastle(board, c.colour, c.left) {
			sb.WriteByte(c.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

func canStillCastle(board *chess.Board, colour chess.Colour, left bool) bool {
	if board.Rights.KingMoved(colour) || board.Rights.RookMoved(colour, left) {
		return false
	}
	home := chess.HomeRank(colour)
	rookFile := chess.BoardSize - 1
	if left {
		rookFile = 0
	}
	return board.Get(chess.Sq(4, home)) == chess.MakePiece(colour, chess.King) &&
		board.Get(chess.Sq(rookFile, home)) == chess.MakePiece(colour, chess.Rook)
}
