package config

import "time"

// Config holds runtime settings for the Health App CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend HTTP API.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - Debug: enables wire-level debug logging.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables (including a .env file),
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
