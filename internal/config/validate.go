package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/pocketchess/internal/chess"
	"github.com/lgbarn/pocketchess/internal/engine"
	"github.com/lgbarn/pocketchess/internal/errors"
)

// MaxSearchDepth bounds the configurable search depth. The search has no
// transposition table or move ordering, so deeper searches are impractical.
const MaxSearchDepth = 6

// MaxWorkers bounds the analysis worker count.
const MaxWorkers = 256

// Validate reports every problem with the configuration at once. Each
// problem wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error

	invalid := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		result = multierror.Append(result, fmt.Errorf("%s: %w", msg, errors.ErrInvalidConfig))
	}

	if c.Verbosity < 0 {
		invalid("verbosity %d is negative", c.Verbosity)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		invalid("workers %d outside [1, %d]", c.Workers, MaxWorkers)
	}
	if c.OutputFile == nil {
		invalid("no output writer")
	}
	if c.LogFile == nil {
		invalid("no log writer")
	}

	if c.Search == nil {
		invalid("no search settings")
	} else if c.Search.Depth < 1 || c.Search.Depth > MaxSearchDepth {
		invalid("search depth %d outside [1, %d]", c.Search.Depth, MaxSearchDepth)
	}

	if c.Game == nil {
		invalid("no game settings")
	} else {
		if c.Game.ThinkDelay < 0 {
			invalid("think delay %s is negative", c.Game.ThinkDelay)
		}
		if c.Game.AIColour != chess.White && c.Game.AIColour != chess.Black {
			invalid("AI colour %d is not a side", c.Game.AIColour)
		}
		if c.Game.StartFEN != "" {
			if _, _, err := engine.NewBoardFromFEN(c.Game.StartFEN); err != nil {
				invalid("start position: %v", err)
			}
		}
	}

	if c.Output == nil {
		invalid("no output settings")
	}

	return result.ErrorOrNil()
}
