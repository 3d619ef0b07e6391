package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoValue signals the key has no stored value.
var ErrNoValue = errors.New("no value stored")

// Store is a durable key to JSON-document mapping. Writes replace the whole
// value; there is no partial update.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// ReadJSON loads and decodes the value stored under key. A missing,
// unreadable or unparseable value yields the caller default: corrupt state is
// recovered locally, never surfaced as an error.
func ReadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Read(ctx, key)
	if err != nil {
		return def
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def
	}
	return value
}

// WriteJSON encodes v and stores it under key, replacing any prior value.
func WriteJSON[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
