// Package filex has small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"strings"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// SafeName turns a display name into a single path element. Separators and
// characters rejected by common filesystems become "_"; a name that would
// be empty, "." or ".." becomes fallback.
func SafeName(name, fallback string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))

	if strings.Trim(name, ".") == "" {
		return fallback
	}
	return name
}
