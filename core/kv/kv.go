package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key is not set.
	ErrNotFound = errors.New("kv: key not found")
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("kv: key cannot be empty")
	// ErrMalformedRecord marks a stored value that cannot be decoded or fails validation.
	ErrMalformedRecord = errors.New("kv: malformed record")
)

// Store is a persistent string key-value store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
