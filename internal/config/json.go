package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ebalashova/healthapp-cli/internal/flagx"
	"github.com/ebalashova/healthapp-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL             *string         `json:"base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	Debug               *bool           `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, nothing happens. Read or
// unmarshal errors panic (caller should recover if desired). Absent fields
// leave the current values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
