// Package output formats position analyses as tagged text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/search"
)

// Analysis is the outcome of analysing one position.
type Analysis struct {
	Index  int // 1-based input position
	FEN    string
	Board  *chess.Board // nil if the FEN did not parse
	Turn   chess.Colour
	Status chess.Status

	// Best move, present only when the side to move could move.
	HasMove bool
	Move    chess.Move
	SAN     string
	Score   int // centipawns, White positive
	Depth   int
	Nodes   uint64

	Err error
}

// FormatScore renders a score as pawns ("+1.00", "-0.30", "0.00") or as
// a mate announcement in moves ("#2" when White mates, "#-1" when Black does).
func FormatScore(score int) string {
	if search.IsMateScore(score) {
		moves := (search.MatePlies(score) + 1) / 2
		if score < 0 {
			return fmt.Sprintf("#-%d", moves)
		}
		return fmt.Sprintf("#%d", moves)
	}

	sign := ""
	switch {
	case score > 0:
		sign = "+"
	case score < 0:
		sign = "-"
		score = -score
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}

// MateIn returns the signed number of moves to the mate announced by
// score, or 0 if there is none. Negative values mean Black mates.
func MateIn(score int) int {
	if !search.IsMateScore(score) {
		return 0
	}
	moves := (search.MatePlies(score) + 1) / 2
	if score < 0 {
		return -moves
	}
	return moves
}

// OutputAnalysis writes one analysis as a block of tags followed by a
// blank line.
func OutputAnalysis(a *Analysis, cfg *config.Config, w io.Writer) {
	writeTag(w, "Position", fmt.Sprint(a.Index))
	writeTag(w, "FEN", a.FEN)

	if a.Err != nil {
		writeTag(w, "Error", a.Err.Error())
		fmt.Fprintln(w)
		return
	}

	writeTag(w, "ToMove", a.Turn.String())
	writeTag(w, "Status", a.Status.String())

	if a.HasMove {
		writeTag(w, "BestMove", a.Move.String())
		if cfg.Output.ShowSAN && a.SAN != "" {
			writeTag(w, "SAN", a.SAN)
		}
		writeTag(w, "Score", FormatScore(a.Score))
		writeTag(w, "Depth", fmt.Sprint(a.Depth))
		if cfg.Output.ShowNodes {
			writeTag(w, "Nodes", fmt.Sprint(a.Nodes))
		}
	}

	if cfg.Output.ShowBoard && a.Board != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, a.Board.String())
	}
	fmt.Fprintln(w)
}

func writeTag(w io.Writer, tag, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
