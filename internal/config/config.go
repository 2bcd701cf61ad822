// Package config provides configuration for the chess rules tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Maximum accepted perft depth; deeper runs take hours from the initial position.
const MaxPerftDepth = 8

// Config holds all program configuration.
type Config struct {
	// StartFEN is the starting position; empty means the initial position.
	StartFEN string

	Log    *LogConfig
	Output *OutputConfig
	Perft  *PerftConfig
}

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to count.
	Depth int

	// Divide prints the node count below each root move.
	Divide bool

	// Workers is the number of goroutines counting root subtrees.
	Workers int

	// Oracle names a reference generator to compare against, or is empty.
	Oracle string

	// CacheSize bounds the subtree count cache in entries; 0 disables it.
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: 1,
	}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:    NewLogConfig(),
		Output: NewOutputConfig(),
		Perft:  NewPerftConfig(),
	}
}

// FEN returns the configured start position.
func (c *Config) FEN() string {
	if c.StartFEN == "" {
		return engine.InitialFEN
	}
	return c.StartFEN
}

// Validate checks the configuration. Every error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("%w: start position: %v", errors.ErrInvalidConfig, err)
		}
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if c.Perft.Depth < 1 || c.Perft.Depth > MaxPerftDepth {
		return fmt.Errorf("%w: perft depth %d outside 1..%d", errors.ErrInvalidConfig, c.Perft.Depth, MaxPerftDepth)
	}
	if c.Perft.Workers < 1 {
		return fmt.Errorf("%w: %d workers", errors.ErrInvalidConfig, c.Perft.Workers)
	}
	if c.Perft.CacheSize < 0 {
		return fmt.Errorf("%w: cache size %d", errors.ErrInvalidConfig, c.Perft.CacheSize)
	}
	if c.Perft.Oracle != "" {
		if _, err := crosscheck.New(c.Perft.Oracle); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
		}
	}
	if c.Output.JSON && c.Output.Plain {
		return fmt.Errorf("%w: JSON and plain output are exclusive", errors.ErrInvalidConfig)
	}
	return nil
}

// OpenFile opens path for writing, or returns fallback when path is empty.
// The returned close function is always safe to call.
func OpenFile(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
