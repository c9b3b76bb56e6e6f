package config

import (
	"encoding/json"
	"os"

	"slambook/internal/flagx"
	"slambook/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "15s" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   *string         `json:"database_path"`
	LogLevel       *string         `json:"log_level"`
	ReadRetries    *uint64         `json:"read_retries"`
	RetryBackoff   *timex.Duration `json:"retry_backoff"`
	LocalMode      *bool           `json:"local"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent file path means no JSON layer; absent keys keep
// their earlier value. Read or decode errors panic; LoadConfig callers may
// recover if they want to continue on a broken file.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ReadRetries != nil {
		cfg.ReadRetries = *jc.ReadRetries
	}
	if jc.RetryBackoff != nil {
		cfg.RetryBackoff = jc.RetryBackoff.Duration
	}
	if jc.LocalMode != nil {
		cfg.LocalMode = *jc.LocalMode
	}
}
