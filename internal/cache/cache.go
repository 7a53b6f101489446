// Package cache is the process-wide read cache in front of the spreadsheet.
// Entries expire after a fixed TTL and are invalidated by key prefix after writes.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a collection read stays fresh
const DefaultTTL = 30 * time.Second

// Clock returns the current time
type Clock func() time.Time

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache maps collection keys to values with a per-entry expiry
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]entry
}

// New creates a cache. A zero ttl falls back to DefaultTTL and a nil clock to time.Now.
func New(ttl time.Duration, now Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now, entries: make(map[string]entry)}
}

// Get returns the value for key if it has not expired. Expired entries are evicted.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key until now+TTL
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate evicts every key starting with prefix; an empty prefix clears the cache
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prefix == "" {
		clear(c.entries)
		return
	}
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of entries, expired or not
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the configured time-to-live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Typed fetches key and asserts it to T
func Typed[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
