package config

import (
	"encoding/json"
	"os"

	"github.com/rnand/qkart-v2/internal/flagx"
	"github.com/rnand/qkart-v2/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify intervals either as strings like
// "500ms" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	EndpointURL          string         `json:"endpoint_url"`
	SearchDebounceWindow timex.Duration `json:"search_debounce_window"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	SessionDBPath        string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when absent no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired). Only
// fields present in the file override the defaults.
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

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.SearchDebounceWindow.Duration != 0 {
		cfg.SearchDebounceWindow = jc.SearchDebounceWindow.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
