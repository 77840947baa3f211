package output

import (
	"strings"

	"github.com/lgbarn/pocketchess/internal/config"
)

// JSONAnalysis represents an analysis in JSON format.
type JSONAnalysis struct {
	Index    int       `json:"index"`
	FEN      string    `json:"fen"`
	ToMove   string    `json:"toMove,omitempty"` // "white" or "black"
	Status   string    `json:"status,omitempty"`
	BestMove *JSONMove `json:"bestMove,omitempty"`
	Score    *int      `json:"score,omitempty"` // centipawns, White positive
	Mate     int       `json:"mate,omitempty"`  // moves to mate, negative when Black mates
	Depth    int       `json:"depth,omitempty"`
	Nodes    uint64    `json:"nodes,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	SAN       string `json:"san,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple analyses for array output.
type JSONOutput struct {
	Positions []*JSONAnalysis `json:"positions"`
}

// AnalysisToJSON converts an analysis to its JSON form.
func AnalysisToJSON(a *Analysis, cfg *config.Config) *JSONAnalysis {
	ja := &JSONAnalysis{
		Index: a.Index,
		FEN:   a.FEN,
	}
	if a.Err != nil {
		ja.Error = a.Err.Error()
		return ja
	}

	ja.ToMove = strings.ToLower(a.Turn.String())
	ja.Status = strings.ToLower(a.Status.String())

	if !a.HasMove {
		return ja
	}

	m := a.Move
	jm := &JSONMove{
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: strings.ToLower(m.Piece.Kind.String()),
	}
	if cfg.Output.ShowSAN {
		jm.SAN = a.SAN
	}
	if m.IsCapture() {
		jm.Captured = strings.ToLower(m.Captured.Kind.String())
	}
	if m.IsPromotion {
		jm.Promotion = strings.ToLower(m.Promotion.Kind.String())
	}
	ja.BestMove = jm

	score := a.Score
	ja.Score = &score
	ja.Mate = MateIn(a.Score)
	ja.Depth = a.Depth
	if cfg.Output.ShowNodes {
		ja.Nodes = a.Nodes
	}
	return ja
}
