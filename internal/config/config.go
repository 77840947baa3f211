// Package config provides configuration for pocketchess.
package config

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=results and errors, 2=running commentary
	Verbosity int

	// Search settings for the automated side and the analyzer
	Search *SearchConfig

	// Game settings for the interactive host
	Game *GameConfig

	// Output formatting for analysis results
	Output *OutputConfig

	// Duplicate position handling (batch mode only)
	Duplicate *DuplicateConfig

	// Workers is the number of analysis goroutines (batch mode only)
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Depth is the search depth in plies
	Depth int

	// Pruning enables alpha-beta cutoffs
	Pruning bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Pruning: true,
	}
}

// GameConfig holds settings for an interactive game.
type GameConfig struct {
	// AIEnabled lets the engine play one side
	AIEnabled bool

	// AIColour is the side the engine plays
	AIColour chess.Colour

	// ThinkDelay is the minimum time the engine appears to think
	ThinkDelay time.Duration

	// StartFEN is the starting position; empty means the standard start
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		AIEnabled:  true,
		AIColour:   chess.Black,
		ThinkDelay: 500 * time.Millisecond,
	}
}

// Logger returns a logger writing to LogFile with the given prefix when
// Verbosity is at least level, and a discarding logger otherwise.
func (c *Config) Logger(prefix string, level int) *log.Logger {
	if c.LogFile == nil || c.Verbosity < level {
		return log.New(io.Discard, prefix, 0)
	}
	return log.New(c.LogFile, prefix, 0)
}
