package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vnuja/YumScroll/internal/pkg/log"
)

// GenericCacheService provides a JSON cache-aside layer shared by the
// feature services. A nil or disabled service is safe to use; every
// operation degrades to a no-op or a miss.
type GenericCacheService struct {
	cache  Cache
	config *CacheConfig
}

// NewGenericCacheService creates a new generic cache service
func NewGenericCacheService(cache Cache, config *CacheConfig) *GenericCacheService {
	if config == nil {
		config = DefaultCacheConfig()
	}
	return &GenericCacheService{
		cache:  cache,
		config: config,
	}
}

// GetCached retrieves and unmarshals cached data into the target interface
func (gcs *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := gcs.buildKey(key)
	data, err := gcs.cache.Get(ctx, fullKey)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		// Corrupt entry; drop it so the next read repopulates.
		_ = gcs.cache.Delete(ctx, fullKey)
		return fmt.Errorf("failed to unmarshal cached data for %s: %w", key, err)
	}

	return nil
}

// CacheData marshals and stores data under the given key
func (gcs *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}, ttl ...time.Duration) error {
	if !gcs.IsEnabled() {
		return ErrCacheDisabled
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data for %s: %w", key, err)
	}

	expiry := gcs.config.TTL
	if len(ttl) > 0 && ttl[0] > 0 {
		expiry = ttl[0]
	}

	if err := gcs.cache.Set(ctx, gcs.buildKey(key), payload, expiry); err != nil {
		log.Warn("Cache set failed for %s: %v", key, err)
		return err
	}
	return nil
}

// InvalidateKey removes a single cached entry
func (gcs *GenericCacheService) InvalidateKey(ctx context.Context, key string) error {
	if !gcs.IsEnabled() {
		return nil
	}
	return gcs.cache.Delete(ctx, gcs.buildKey(key))
}

// InvalidatePattern removes all cached entries matching the glob pattern
func (gcs *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) error {
	if !gcs.IsEnabled() {
		return nil
	}
	return gcs.cache.DeletePattern(ctx, gcs.buildKey(pattern))
}

// Exists reports whether a key is present
func (gcs *GenericCacheService) Exists(ctx context.Context, key string) (bool, error) {
	if !gcs.IsEnabled() {
		return false, nil
	}
	return gcs.cache.Exists(ctx, gcs.buildKey(key))
}

// IsEnabled reports whether the service will actually cache anything
func (gcs *GenericCacheService) IsEnabled() bool {
	return gcs != nil && gcs.config.Enabled && gcs.cache != nil
}

// Close releases the underlying cache backend
func (gcs *GenericCacheService) Close() error {
	if gcs == nil || gcs.cache == nil {
		return nil
	}
	return gcs.cache.Close()
}

func (gcs *GenericCacheService) buildKey(key string) string {
	if gcs.config.Prefix == "" {
		return key
	}
	return gcs.config.Prefix + ":" + key
}
