package config

import "io"

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress skips positions already seen earlier in the input
	Suppress bool

	// Exact compares whole boards on a hash match instead of trusting the
	// hashes alone
	Exact bool

	// DuplicateFile receives the FEN of every skipped position
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
