// Package config loads runtime settings for the stocktrack CLI.
// Values are resolved as defaults, then a JSON file overlay (-c/-config),
// then command-line flags; later sources win.
package config

import "time"

// Storage backend names accepted in Backend.
const (
	BackendFile      = "file"
	BackendSQLite    = "sqlite"
	BackendEncrypted = "encrypted"
	BackendMemory    = "memory"
)

// Config holds runtime settings for the stocktrack CLI.
//
// Fields:
//   - Backend: which storage backend keeps the snapshot blob.
//   - StorePath: blob file path for the file and encrypted backends.
//   - DatabaseDSN: sqlite database path for the sqlite backend.
//   - FlushTimeout: deadline for one snapshot write; a write slower than
//     this is treated as a persistence failure.
type Config struct {
	Backend      string
	StorePath    string
	DatabaseDSN  string
	FlushTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendFile
	c.StorePath = "stockdata.json"
	c.DatabaseDSN = "stocktrack.db"
	c.FlushTimeout = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
