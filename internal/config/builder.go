package config

import (
	"io"
	"time"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSearchDepth sets the search depth in plies.
func (b *ConfigBuilder) WithSearchDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithPruning enables or disables alpha-beta cutoffs.
func (b *ConfigBuilder) WithPruning(enabled bool) *ConfigBuilder {
	b.cfg.Search.Pruning = enabled
	return b
}

// WithAI enables the engine for the given side, or disables it.
func (b *ConfigBuilder) WithAI(enabled bool, colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.AIEnabled = enabled
	b.cfg.Game.AIColour = colour
	return b
}

// WithThinkDelay sets the minimum engine thinking time.
func (b *ConfigBuilder) WithThinkDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Game.ThinkDelay = d
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONStream writes JSON objects as positions complete.
func (b *ConfigBuilder) WithJSONStream(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONStream = enabled
	return b
}

// WithSAN controls whether SAN is shown next to UCI moves.
func (b *ConfigBuilder) WithSAN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowSAN = enabled
	return b
}

// WithBoardDiagrams controls whether positions are drawn in text output.
func (b *ConfigBuilder) WithBoardDiagrams(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.Exact = exact
	return b
}

// WithWorkers sets the number of analysis goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
