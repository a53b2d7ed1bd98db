package config

import "time"

// Config holds runtime settings for the NoteMark CLI.
//
// Passphrase is only ever read from the environment (or .env); the CLI
// prompts for it when Encrypt is set and it is empty.
type Config struct {
	DatabasePath string
	Encrypt      bool
	SaveTimeout  time.Duration
	LogFormat    string
	LogLevel     string
	Passphrase   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "notemark.db"
	c.Encrypt = false
	c.SaveTimeout = 3 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.Passphrase = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Invalid values panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
