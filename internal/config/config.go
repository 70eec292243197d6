// Package config loads runtime settings for the POS terminal.
package config

import "time"

// Config holds runtime settings for the POS terminal.
//
// Fields:
//   - APIBaseURL: base URL of the POS REST API, no trailing slash.
//   - DatabasePath: sqlite file holding the durable terminal state.
//   - HTTPTimeout: per-request timeout of the API HTTP client.
//   - ReceiptFile: when non-empty, receipts are also written to this file.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	HTTPTimeout  time.Duration
	ReceiptFile  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.DatabasePath = "pos.db"
	c.HTTPTimeout = 10 * time.Second
	c.ReceiptFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
