// Package config assembles runtime settings for the QKart CLI from
// defaults, an optional JSON file, and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds runtime settings for the QKart CLI.
//
// Fields:
//   - EndpointURL: base URL of the storefront backend REST API.
//   - SearchDebounceWindow: quiet period before a coalesced search
//     input is dispatched.
//   - RequestTimeout: transport-level timeout for every backend call.
//   - SessionDBPath: SQLite file holding the durable session record.
type Config struct {
	EndpointURL          string
	SearchDebounceWindow time.Duration
	RequestTimeout       time.Duration
	SessionDBPath        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://localhost:8082/api/v1"
	c.SearchDebounceWindow = 500 * time.Millisecond
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "qkart.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
