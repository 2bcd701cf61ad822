// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position and search
	startFEN = flag.String("fen", "", "Position to count from (default: initial position)")
	depth    = flag.Int("depth", 1, "Number of plies to count")
	divide   = flag.Bool("divide", false, "Print the node count below each root move")
	workers  = flag.Int("workers", runtime.NumCPU(), "Goroutines counting root subtrees")
	oracle   = flag.String("oracle", "", "Compare with a reference generator: notnil, dragontooth, goose")
	cache    = flag.Int("cache", 1<<20, "Subtree count cache entries (0 = off)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")

	// Logging
	logFile  = flag.String("log", "", "Log file (default: stderr)")
	logLevel = flag.String("loglevel", "warn", "Log level: debug, info, warn, error, disabled")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Oracle = *oracle
	cfg.Perft.CacheSize = *cache
	cfg.Output.JSON = *jsonOutput
	cfg.Log.Level = *logLevel
	cfg.Log.Console = *logFile == ""
}
