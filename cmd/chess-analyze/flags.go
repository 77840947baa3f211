// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/pocketchess/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	jsonStream = flag.Bool("stream", false, "With -J, write one JSON object per position as it completes")
	noSAN      = flag.Bool("nosan", false, "Don't add SAN next to the UCI best move")
	showBoard  = flag.Bool("board", false, "Print a diagram of each position (text output only)")
	noNodes    = flag.Bool("nonodes", false, "Don't report searched node counts")

	// Search options
	depth   = flag.Int("depth", 3, "Search depth in plies")
	noPrune = flag.Bool("noprune", false, "Disable alpha-beta pruning (same results, slower)")
	workers = flag.Int("workers", 1, "Number of analysis goroutines")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Skip positions that appeared earlier in the input")
	exactDuplicates    = flag.Bool("exact", false, "Compare whole boards when checking for duplicates")
	duplicateFile      = flag.String("d", "", "Write skipped duplicate positions to this file (implies -D)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file instead of stderr")
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose = flag.Bool("v", false, "Log every search")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line settings into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.JSONStream = *jsonStream
	cfg.Output.ShowSAN = !*noSAN
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowNodes = !*noNodes

	cfg.Search.Depth = *depth
	cfg.Search.Pruning = !*noPrune
	cfg.Workers = *workers

	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""
	cfg.Duplicate.Exact = *exactDuplicates

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
