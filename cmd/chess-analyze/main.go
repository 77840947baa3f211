// chess-analyze finds the best move in each of a list of FEN positions.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-analyze version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fens := readAllInputs(cfg)

	stop := make(chan struct{})
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		close(stop)
	}()

	written, failed, err := analyzeAll(fens, cfg, output.NewWriter(cfg.OutputFile, cfg), stop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d position(s) analysed, %d failed, out of %d.\n", written, failed, len(fens))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile opens the -d file for skipped duplicates.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// readAllInputs reads positions from the files named on the command line,
// or from stdin when there are none. Unreadable files are reported and skipped.
func readAllInputs(cfg *config.Config) []string {
	args := flag.Args()
	if len(args) == 0 {
		fens, err := readPositions(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		}
		return fens
	}

	var all []string
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}
		fens, err := readPositions(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filename, err)
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%s: %d position(s)\n", filename, len(fens))
		}
		all = append(all, fens...)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return all
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-analyze [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads one FEN per line (from stdin if no files are given) and reports\n")
	fmt.Fprintf(os.Stderr, "the status and best move of each position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRules: castling and en passant are not played; pawns promote to queens.\n")
}
