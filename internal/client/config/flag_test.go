package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-d", "x.db", "-e", "-t", "5s", "-l", "debug"},
			expected: &Config{DatabasePath: "x.db", Encrypt: true, SaveTimeout: 5 * time.Second, LogFormat: "text", LogLevel: "debug"}},
		{name: "equals form, foreign flags ignored", args: []string{"-c", "cfg.json", "-d=y.db", "-x", "1"},
			expected: &Config{DatabasePath: "y.db", SaveTimeout: 3 * time.Second, LogFormat: "text", LogLevel: "info"}},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
