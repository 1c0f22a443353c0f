package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// cacheItem represents a single cached entry
type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

func (i *cacheItem) expired() bool {
	return !i.expiresAt.IsZero() && time.Now().After(i.expiresAt)
}

// MemoryCache is an in-process Cache implementation. It is the default
// backend for development and tests.
type MemoryCache struct {
	mu      sync.RWMutex
	items   map[string]*cacheItem
	config  *CacheConfig
	stopCh  chan struct{}
	stopped bool
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(config *CacheConfig) *MemoryCache {
	if config == nil {
		config = DefaultCacheConfig()
	}

	c := &MemoryCache{
		items:  make(map[string]*cacheItem),
		config: config,
		stopCh: make(chan struct{}),
	}

	if config.CleanupInterval > 0 {
		go c.startCleanup()
	}

	return c
}

// Get retrieves a value from cache by key
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired() {
		return nil, ErrCacheMiss
	}

	return item.value, nil
}

// Set stores a value in cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.config.TTL
	}

	item := &cacheItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()

	return nil
}

// Delete removes a value from cache by key
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

// DeletePattern removes all keys matching the given glob pattern
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			delete(c.items, key)
		}
	}
	return nil
}

// Exists checks if a key exists in cache
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	return ok && !item.expired(), nil
}

// Close stops the cleanup goroutine and releases the stored items
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stopped {
		close(c.stopCh)
		c.stopped = true
	}
	c.items = make(map[string]*cacheItem)
	return nil
}

func (c *MemoryCache) startCleanup() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *MemoryCache) cleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.items {
		if item.expired() {
			delete(c.items, key)
		}
	}
}
