// Package kv stores opaque values under string keys in the local database.
package kv

import (
	"context"
)

// Repository is a flat key-value table. Get returns (nil, nil) for a key
// that was never set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
