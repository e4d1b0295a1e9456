package config

import (
	"encoding/json"
	"os"

	"github.com/young-sensey/dochub/internal/flagx"
	"github.com/young-sensey/dochub/internal/timex"
)

// JSONConfig is the DTO for config files. Durations accept "15s" style
// strings or integer nanoseconds.
type JSONConfig struct {
	BaseURL         string         `json:"base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
	SessionDB       string         `json:"session_db"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent flags mean no JSON is loaded; read or unmarshal errors panic,
// wrong startup configuration is not recoverable. Only fields present in
// the file override the current values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
}
