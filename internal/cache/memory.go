package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryCache is an in-process Cache for single-instance deployments and tests.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	// gen is bumped by Forget; a populate that started before a Forget is not stored.
	gen map[string]uint64
	now func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry), gen: make(map[string]uint64), now: time.Now}
}

func (c *MemoryCache) Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, producer func() (interface{}, error)) error {
	c.mu.RLock()
	e, ok := c.entries[key]
	startGen := c.gen[key]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expiresAt) {
		if err := json.Unmarshal(e.raw, dest); err == nil {
			return nil
		}
	}

	raw, err := populate(dest, producer)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.gen[key] == startGen {
		c.entries[key] = entry{raw: raw, expiresAt: c.now().Add(ttl)}
	}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Forget(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.gen[key]++
	c.mu.Unlock()
	return nil
}
