// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/errors"
)

var (
	// Game options
	aiSide   = flag.String("ai", "black", "Side the engine plays: white, black or none")
	depth    = flag.Int("depth", 3, "Engine search depth in plies")
	noPrune  = flag.Bool("noprune", false, "Disable alpha-beta pruning (same moves, slower)")
	delay    = flag.Duration("delay", config.NewGameConfig().ThinkDelay, "Minimum engine thinking time")
	startFEN = flag.String("fen", "", "Start from this position instead of the standard one")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file")
	verbose = flag.Bool("v", false, "Log every move and search")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line settings into cfg.
func applyFlags(cfg *config.Config) error {
	switch strings.ToLower(*aiSide) {
	case "white", "w":
		cfg.Game.AIEnabled = true
		cfg.Game.AIColour = chess.White
	case "black", "b":
		cfg.Game.AIEnabled = true
		cfg.Game.AIColour = chess.Black
	case "none", "off":
		cfg.Game.AIEnabled = false
	default:
		return fmt.Errorf("-ai %q: want white, black or none: %w", *aiSide, errors.ErrInvalidConfig)
	}

	cfg.Search.Depth = *depth
	cfg.Search.Pruning = !*noPrune
	cfg.Game.ThinkDelay = *delay
	cfg.Game.StartFEN = *startFEN

	if *verbose {
		cfg.Verbosity = 2
	}
	return nil
}
