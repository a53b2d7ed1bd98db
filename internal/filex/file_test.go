package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	err := EnsureDir(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Work", "Work"},
		{"  Side projects ", "Side projects"},
		{"a/b\\c", "a_b_c"},
		{"what?", "what_"},
		{"", "fallback"},
		{"..", "fallback"},
		{".", "fallback"},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SafeName(tt.in, "fallback"), tt.in)
	}
}
