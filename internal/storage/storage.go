// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage is a durable key-value store of named string blobs.
// It knows nothing about the content of blobs.
type Storage interface {
	// Load returns ErrNotFound when key is absent.
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	// Remove does not fail on absent key.
	Remove(ctx context.Context, key string) error
	// Ping checks the underlying medium is reachable.
	Ping(ctx context.Context) error
}
