// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	startFEN    = flag.String("fen", "", "Starting position (default: initial position)")
	sessionName = flag.String("name", "", "Session name for log lines (default: generated)")

	// Display options
	plainMode = flag.Bool("plain", false, "Line mode: read squares from stdin instead of the full screen board")
	noColour  = flag.Bool("nocolour", false, "Disable ANSI colours in line mode")

	// Logging
	logFile  = flag.String("log", "", "Log file (default: stderr in line mode, none in full screen mode)")
	logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error, disabled")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Output.Plain = *plainMode
	cfg.Output.NoColour = *noColour
	cfg.Log.Level = *logLevel
	cfg.Log.Console = *logFile == ""
}
