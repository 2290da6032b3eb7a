package keyset

import (
	"log/slog"
	"sync"
	"time"

	"github.com/keyforge/jwkforge/pkg/types"
)

// Cache stores built key sets keyed by their source location, so repeated
// lookups of an unchanged key directory skip the parse/extract work.
type Cache interface {
	Get(key string) (*types.JWKS, bool)
	Set(key string, value *types.JWKS, ttl time.Duration)
}

type memoryCache struct {
	data       map[string]cacheItem
	mu         sync.RWMutex
	maxSize    int           // Maximum number of items to store
	defaultTTL time.Duration // Default TTL for cache entries
}

type cacheItem struct {
	value      *types.JWKS
	expiration time.Time
	lastAccess time.Time // For LRU eviction
}

// NewMemoryCache creates an in-memory TTL cache with LRU eviction once
// maxSize entries are held.
func NewMemoryCache(maxSize int, defaultTTL time.Duration) Cache {
	return &memoryCache{
		data:       make(map[string]cacheItem),
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
	}
}

func (c *memoryCache) Get(key string) (*types.JWKS, bool) {
	c.mu.RLock()
	item, found := c.data[key]
	c.mu.RUnlock()

	if !found {
		slog.Debug("Key set cache miss", "key", key)
		return nil, false
	}

	// Check if expired
	if time.Now().After(item.expiration) {
		slog.Debug("Key set cache entry expired", "key", key)

		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()

		return nil, false
	}

	// Update last access time for LRU tracking
	c.mu.Lock()
	item.lastAccess = time.Now()
	c.data[key] = item
	c.mu.Unlock()

	slog.Debug("Key set cache hit", "key", key)
	return item.value, true
}

func (c *memoryCache) Set(key string, value *types.JWKS, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Use default TTL if not specified
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	// Check if we need to evict items
	if len(c.data) >= c.maxSize {
		c.evictLRU()
	}

	c.data[key] = cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl),
		lastAccess: time.Now(),
	}

	slog.Debug("Cached key set", "key", key, "ttl", ttl)
}

// evictLRU removes the least recently used item from the cache
func (c *memoryCache) evictLRU() {
	var oldestKey string
	var oldestTime time.Time

	for k, entry := range c.data {
		if oldestTime.IsZero() || entry.lastAccess.Before(oldestTime) {
			oldestKey = k
			oldestTime = entry.lastAccess
		}
	}

	if oldestKey != "" {
		slog.Debug("Evicting LRU key set cache item", "key", oldestKey)
		delete(c.data, oldestKey)
	}
}
