package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBaseURL             = "HEALTHAPP_API_URL"
	EnvRequestTimeout      = "HEALTHAPP_REQUEST_TIMEOUT"
	EnvOnlineCheckInterval = "HEALTHAPP_ONLINE_CHECK_INTERVAL"
	EnvDebug               = "HEALTHAPP_DEBUG"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over the file. Durations use time.ParseDuration syntax
// ("10s", "1m"); unparsable values are ignored.
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvOnlineCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
