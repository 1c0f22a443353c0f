package cache

import "fmt"

// NewCache creates a Cache for the configured backend.
func NewCache(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Backend {
	case BackendMemory, "":
		return NewMemoryCache(config), nil
	case BackendRedis:
		return NewRedisCache(config)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", config.Backend)
	}
}
