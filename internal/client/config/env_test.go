package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("environment variables", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvDatabasePath, "env.db")
		t.Setenv(EnvEncrypt, "true")
		t.Setenv(EnvSaveTimeout, "750ms")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvPassphrase, "hunter2")

		cfg := defaults()
		parseEnv(cfg)

		assert.Equal(t, &Config{
			DatabasePath: "env.db",
			Encrypt:      true,
			SaveTimeout:  750 * time.Millisecond,
			LogFormat:    "json",
			LogLevel:     "error",
			Passphrase:   "hunter2",
		}, cfg)
	})

	t.Run("dot env file, environment wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("NOTEMARK_LOG_LEVEL=debug\nNOTEMARK_ENCRYPT=1\n"), 0o600))
		t.Setenv(EnvLogLevel, "warn")
		t.Cleanup(func() { _ = os.Unsetenv(EnvEncrypt) })

		cfg := defaults()
		parseEnv(cfg)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.Encrypt)
	})

	t.Run("invalid bool panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvEncrypt, "sometimes")

		require.Panics(t, func() { parseEnv(defaults()) })
	})

	t.Run("invalid duration panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvSaveTimeout, "soon")

		require.Panics(t, func() { parseEnv(defaults()) })
	})
}
