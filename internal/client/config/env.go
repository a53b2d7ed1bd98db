package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDatabasePath = "NOTEMARK_DB"
	EnvEncrypt      = "NOTEMARK_ENCRYPT"
	EnvSaveTimeout  = "NOTEMARK_SAVE_TIMEOUT"
	EnvLogFormat    = "NOTEMARK_LOG_FORMAT"
	EnvLogLevel     = "NOTEMARK_LOG_LEVEL"
	EnvPassphrase   = "NOTEMARK_PASSPHRASE"
)

// dotEnvFile is loaded from the working directory when present. Variables
// already set in the environment win over the file.
var dotEnvFile = ".env"

// parseEnv overlays cfg with NOTEMARK_* variables. It panics on a malformed
// .env file or value.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvDatabasePath); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(EnvEncrypt); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.Encrypt = b
	}
	if v, ok := os.LookupEnv(EnvSaveTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SaveTimeout = d
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPassphrase); ok {
		cfg.Passphrase = v
	}
}
