package test

import (
	"context"
	"slices"
	"sync"

	"github.com/anvilforge/storefront/internal/storage/kv"
)

// MemoryStore is an in-memory kv.Store used across unit tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Read returns the stored value or kv.ErrNoValue.
func (s *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.values[key]
	if !ok {
		return nil, kv.ErrNoValue
	}
	return slices.Clone(raw), nil
}

// Write stores a copy of value under key.
func (s *MemoryStore) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

// Remove deletes the key.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Seed places a raw value directly, corrupt payloads included.
func (s *MemoryStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
}

// Has reports whether the key currently holds a value.
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

// Raw returns the stored bytes for assertions on persisted content.
func (s *MemoryStore) Raw(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.values[key])
}
