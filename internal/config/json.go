package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/postill/internal/flagx"
	"github.com/dmitrijs2005/postill/internal/timex"
)

// JsonConfig is the DTO for reading the optional JSON configuration file.
// It uses timex.Duration for the timeout so both "10s" and integer
// nanoseconds parse; values are then copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL   string         `json:"api_base_url"`
	DatabasePath string         `json:"database_path"`
	HTTPTimeout  timex.Duration `json:"http_timeout"`
	ReceiptFile  string         `json:"receipt_file"`
}

// parseJson loads configuration values from the JSON file given via the
// -c or -config flags. When no flag is set, nothing is loaded. A file that
// cannot be read or parsed is a startup error and panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.APIBaseURL != "" {
		config.APIBaseURL = c.APIBaseURL
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
	if c.HTTPTimeout.Duration != 0 {
		config.HTTPTimeout = c.HTTPTimeout.Duration
	}
	if c.ReceiptFile != "" {
		config.ReceiptFile = c.ReceiptFile
	}
}
