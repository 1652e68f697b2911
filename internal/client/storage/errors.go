package storage

import "errors"

// Common client cache errors
var (
	// ErrCacheMiss indicates that the requested cache key was never persisted
	ErrCacheMiss = errors.New("cache key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
