// Package config loads runtime settings for the slambook CLI by layering
// defaults, an optional JSON file, and command-line flags, in that order of
// increasing precedence.
package config

import "time"

// Config holds runtime settings for the slambook CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: SQLite file backing the local store and session state.
//   - LogLevel: debug|info|warn|error.
//   - ReadRetries: extra attempts given to transient read failures.
//   - RetryBackoff: pause between read retries.
//   - LocalMode: start against the legacy local store instead of the API.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
	ReadRetries    uint64
	RetryBackoff   time.Duration
	LocalMode      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "slambook.db"
	c.LogLevel = "info"
	c.ReadRetries = 2
	c.RetryBackoff = 500 * time.Millisecond
	c.LocalMode = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
