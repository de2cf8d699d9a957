// Package cache keeps recent allocation results in memory so clients can fetch
// them again by id.
package cache

import (
	"context"
	"sync"
	"time"

	"inventory-optimizer/internal/model"

	"github.com/google/uuid"
)

// Entry is one cached result.
type Entry struct {
	Result    *model.AllocationResult
	ExpiresAt time.Time
}

// ResultCache is an in-memory TTL cache of allocation results.
// A nil *ResultCache is valid and caches nothing.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	now   func() time.Time
}

// New returns a cache with the given TTL, or nil if ttl <= 0 (caching disabled).
func New(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		return nil
	}
	return &ResultCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores a result under a fresh id and returns the id.
func (c *ResultCache) Put(res *model.AllocationResult) string {
	if c == nil || res == nil {
		return ""
	}
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &Entry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return id
}

// Get returns a cached result if present and not expired.
func (c *ResultCache) Get(id string) (*model.AllocationResult, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[id]
	if !ok || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Entry)
}

// Run removes expired entries every interval until ctx is done.
func (c *ResultCache) Run(ctx context.Context, interval time.Duration) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.purge()
		}
	}
}

func (c *ResultCache) purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for id, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, id)
			removed++
		}
	}
	return removed
}
