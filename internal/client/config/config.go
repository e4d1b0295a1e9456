package config

import "time"

// Config holds runtime settings for the DocHub CLI.
//
// Fields:
//   - BaseURL: absolute URL of the API (may carry a path prefix for JSON
//     endpoints; downloads always go to the server origin).
//   - RequestTimeout: per-request HTTP timeout.
//   - NotificationTTL: how long success/error banners stay before
//     auto-clearing.
//   - SessionDB: path of the sqlite file holding the persisted session.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	SessionDB       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.NotificationTTL = 4 * time.Second
	c.SessionDB = "dochub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
