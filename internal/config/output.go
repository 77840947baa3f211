package config

// OutputConfig holds settings related to analysis output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONStream writes one JSON object per position as it completes
	// instead of a single document at the end
	JSONStream bool

	// ShowSAN adds Standard Algebraic Notation next to UCI moves
	ShowSAN bool

	// ShowBoard prints a diagram of each analysed position (text only)
	ShowBoard bool

	// ShowNodes includes the searched node count
	ShowNodes bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowSAN:   true,
		ShowNodes: true,
	}
}
