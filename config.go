package lazyregex

import "github.com/coregx/coregex/meta"

// Config controls how a pattern is compiled.
//
// Flags are applied to the pattern text. Engine is handed to the coregex
// meta engine unchanged and tunes its strategy selection and caches.
//
// Example:
//
//	config := lazyregex.DefaultConfig()
//	config.Flags.CaseInsensitive = true
//	config.Engine.MaxDFAStates = 50000
//	re, err := lazyregex.CompileWithConfig(`error:\s*`, config)
type Config struct {
	Flags  Flags
	Engine meta.Config
}

// DefaultConfig returns no flags and the engine's default configuration
// with literal prefiltering turned off.
//
// The prefilter in the pinned engine release reports wrong spans for some
// patterns: case-insensitive literals miss mixed-case input, and `\d1` over
// "0000001000" yields [0:7] instead of [5:7]. Removal depends on exact spans,
// so the default trades that speedup for correctness.
func DefaultConfig() Config {
	engine := meta.DefaultConfig()
	engine.EnablePrefilter = false
	return Config{
		Engine: engine,
	}
}

// Validate checks the engine configuration.
// It returns a *meta.ConfigError naming the offending field.
func (c Config) Validate() error {
	return c.Engine.Validate()
}
