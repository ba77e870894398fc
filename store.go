package prefstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("prefstore: not found")
	ErrTypeMismatch = errors.New("prefstore: type mismatch")
)

// Store describes the operations prefstore needs from a backing key-value
// settings store. Persistence, durability, and (for the roaming tier)
// cross-device synchronization are owned entirely by the implementation.
// Implementations must be thread-safe.
type Store interface {
	// Contains reports whether key is present.
	Contains(ctx context.Context, key string) (bool, error)

	// Get returns the stored value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or updates the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Option customizes Settings behavior.
type Option func(*Settings)

// WithLocalStore specifies the device-scoped store.
// If not provided, NewMemory() is used.
func WithLocalStore(st Store) Option {
	return func(s *Settings) {
		if st != nil {
			s.local = st
		}
	}
}

// WithRoamingStore specifies the store synchronized across a user's devices.
// If not provided, NewMemory() is used.
func WithRoamingStore(st Store) Option {
	return func(s *Settings) {
		if st != nil {
			s.roaming = st
		}
	}
}

// WithLogger specifies a logger for operation logging.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(s *Settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for identifying the source of logs when several accessors share a
// logger.
func WithLogTag(tag string) Option {
	return func(s *Settings) {
		s.logTag = tag
	}
}
