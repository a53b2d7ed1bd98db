package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/notemark/internal/flagx"
	"github.com/dmitrijs2005/notemark/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	Encrypt      *bool           `json:"encrypt"`
	SaveTimeout  *timex.Duration `json:"save_timeout"`
	LogFormat    *string         `json:"log_format"`
	LogLevel     *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.Encrypt != nil {
		cfg.Encrypt = *jc.Encrypt
	}
	if jc.SaveTimeout != nil {
		cfg.SaveTimeout = jc.SaveTimeout.Duration
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
