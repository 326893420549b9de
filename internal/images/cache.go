// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// cache.go provides a concurrency-safe in-memory cache for successful
// image searches. Entries expire after a TTL; expired entries are
// dropped lazily on read. Query cardinality is low (one query per
// industry keyword), so there is no eviction cap.
package images

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a successful search result stays cached.
const DefaultCacheTTL = time.Hour

type cacheEntry struct {
	images  []Image
	expires time.Time
}

// queryCache is a concurrency-safe TTL cache keyed by the full query
// string (query, page, perPage, orientation).
type queryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newQueryCache(ttl time.Duration) *queryCache {
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &queryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns the cached images for a key. Returns nil, false on miss
// or expiry.
func (c *queryCache) get(key string) ([]Image, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.images, true
}

// put stores images for a key with the configured TTL. Concurrent
// writers for the same key race; last write wins, which is acceptable
// since both wrote results for the identical query.
func (c *queryCache) put(key string, imgs []Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{images: imgs, expires: c.now().Add(c.ttl)}
}
