package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/pocketchess/internal/config"
	"github.com/lgbarn/pocketchess/internal/engine"
	"github.com/lgbarn/pocketchess/internal/errors"
	"github.com/lgbarn/pocketchess/internal/hashing"
	"github.com/lgbarn/pocketchess/internal/notation"
	"github.com/lgbarn/pocketchess/internal/output"
	"github.com/lgbarn/pocketchess/internal/search"
	"github.com/lgbarn/pocketchess/internal/worker"
)

// readPositions returns the FEN lines of r. Blank lines and lines starting
// with '#' are skipped.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// analyzePosition parses one position, classifies it for the side to move
// and, when that side can move, searches for the best move. Every work item
// gets its own board and searcher, so this is safe to run concurrently.
func analyzePosition(item worker.WorkItem, cfg *config.Config, logger *log.Logger) worker.ProcessResult {
	a := &output.Analysis{Index: item.Index, FEN: item.FEN}
	result := worker.ProcessResult{FEN: item.FEN, Analysis: a}

	board, turn, err := engine.NewBoardFromFEN(item.FEN)
	if err != nil {
		a.Err = &errors.PositionError{Err: err, Index: item.Index}
		result.Error = a.Err
		return result
	}
	result.Board = board
	result.Turn = turn
	a.Board = board
	a.Turn = turn
	a.Status = engine.Classify(board, turn)

	if !a.Status.InProgress() {
		return result
	}

	searcher := search.NewSearcher(
		search.WithPruning(cfg.Search.Pruning),
		search.WithLogger(logger),
	)
	res, err := searcher.FindBestMove(board, turn, cfg.Search.Depth)
	if err != nil {
		a.Err = &errors.PositionError{Err: err, FEN: item.FEN, Index: item.Index}
		result.Error = a.Err
		return result
	}

	a.HasMove = true
	a.Move = res.Move
	a.Score = res.Score
	a.Depth = cfg.Search.Depth
	a.Nodes = res.Nodes

	if cfg.Output.ShowSAN {
		san, err := notation.SAN(board, turn, res.Move)
		if err != nil {
			logger.Printf("position %d: %v", item.Index, err)
		} else {
			a.SAN = san
		}
	}
	return result
}

// findDuplicates maps the number of every position that repeats an
// earlier one to the number of its first occurrence. Positions are
// numbered from 1; unparseable lines are never duplicates.
func findDuplicates(fens []string, exact bool) map[int]int {
	detector := hashing.NewDuplicateDetector(exact)
	dups := make(map[int]int)
	for i, fen := range fens {
		board, turn, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			continue
		}
		if first, dup := detector.CheckAndAdd(board, turn, i+1); dup {
			dups[i+1] = first
		}
	}
	return dups
}

// analyzeAll analyses fens on cfg.Workers goroutines and writes the
// results to w in input order. Positions are numbered from 1. It returns
// the number of positions written and how many of them failed. With
// duplicate suppression on, repeated positions are neither searched nor
// written.
func analyzeAll(fens []string, cfg *config.Config, w output.AnalysisWriter, stop <-chan struct{}) (written, failed int, err error) {
	logger := cfg.Logger("analyze: ", 2)

	var dups map[int]int
	if cfg.Duplicate != nil && cfg.Duplicate.Suppress {
		dups = findDuplicates(fens, cfg.Duplicate.Exact)
		if len(dups) > 0 {
			cfg.Logger("analyze: ", 1).Printf("%d duplicate position(s) skipped", len(dups))
		}
	}

	bufferSize := min(max(len(fens), 1), 100)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		if _, dup := dups[item.Index]; dup {
			return worker.ProcessResult{FEN: item.FEN}
		}
		return analyzePosition(item, cfg, logger)
	}, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(worker.WorkItem{FEN: fen, Index: i + 1})
		}
		pool.Close()
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-stop:
			pool.Stop()
		case <-done:
		}
	}()

	err = worker.InOrder(pool.Results(), 1, func(r worker.ProcessResult) error {
		if r.Skipped {
			return nil
		}
		if first, dup := dups[r.Index]; dup {
			return writeDuplicate(cfg, r, first)
		}
		a, ok := r.Analysis.(*output.Analysis)
		if !ok {
			return nil
		}
		if a.Err != nil {
			failed++
		}
		written++
		return w.WriteAnalysis(a)
	})
	if err != nil {
		return written, failed, errors.Wrap(err, "writing results")
	}
	return written, failed, w.Close()
}

// writeDuplicate reports a skipped duplicate to the duplicate file, if any.
func writeDuplicate(cfg *config.Config, r worker.ProcessResult, first int) error {
	if cfg.Duplicate.DuplicateFile == nil {
		return nil
	}
	_, err := fmt.Fprintf(cfg.Duplicate.DuplicateFile, "%s ; position %d repeats position %d\n", r.FEN, r.Index, first)
	return err
}
