package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// KeyValueStore holds opaque blobs by key.
type KeyValueStore interface {
	// Get returns the blob stored under key or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the blob stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
