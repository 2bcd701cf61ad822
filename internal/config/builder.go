package config

import "io"

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

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.Log.File = w
	return b
}

// WithConsoleLog enables human readable log lines.
func (b *ConfigBuilder) WithConsoleLog(enabled bool) *ConfigBuilder {
	b.cfg.Log.Console = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.File = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithNoColour disables ANSI colours.
func (b *ConfigBuilder) WithNoColour(disabled bool) *ConfigBuilder {
	b.cfg.Output.NoColour = disabled
	return b
}

// WithPlain selects line mode.
func (b *ConfigBuilder) WithPlain(enabled bool) *ConfigBuilder {
	b.cfg.Output.Plain = enabled
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-move node counts.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCacheSize bounds the subtree count cache; 0 disables it.
func (b *ConfigBuilder) WithCacheSize(entries int) *ConfigBuilder {
	b.cfg.Perft.CacheSize = entries
	return b
}

// WithOracle names the reference generator to compare against.
func (b *ConfigBuilder) WithOracle(name string) *ConfigBuilder {
	b.cfg.Perft.Oracle = name
	return b
}
