package catalog

import (
	"sync"

	"github.com/anvilforge/storefront/internal/domain/model"
)

// Cache holds the most recent catalog snapshot for request handlers. A failed
// refresh leaves the previous snapshot in place.
type Cache struct {
	mu       sync.RWMutex
	snapshot *model.Catalog
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Set replaces the snapshot.
func (c *Cache) Set(snapshot *model.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
}

// Snapshot returns the current catalog, or ok=false before the first
// successful refresh.
func (c *Cache) Snapshot() (*model.Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return nil, false
	}
	return c.snapshot, true
}
