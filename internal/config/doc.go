// Package config loads runtime configuration for the Health App CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), loaded after an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-v          enable debug logging
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "30s",
//	  "debug": true
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, timeouts and the debug toggle
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
