package config

import (
	"io"
	"os"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// File receives boards, perft results and JSON.
	File io.Writer

	// JSON enables JSON output instead of text boards
	JSON bool

	// NoColour disables ANSI colours in text boards
	NoColour bool

	// Plain selects line mode instead of the full screen interface
	Plain bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		File: os.Stdout,
	}
}
