package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stocktrack/internal/flagx"
	"github.com/dmitrijs2005/stocktrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the flush timeout either as a string
// like "3s" or as integer nanoseconds.
type JsonConfig struct {
	Backend      string         `json:"backend"`
	StorePath    string         `json:"store_path"`
	DatabaseDSN  string         `json:"database_dsn"`
	FlushTimeout timex.Duration `json:"flush_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags (flagx.JsonConfigFlags); when no path
// is given nothing is loaded. Fields absent from the JSON keep their current
// values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.FlushTimeout.Duration != 0 {
		cfg.FlushTimeout = jc.FlushTimeout.Duration
	}
}
