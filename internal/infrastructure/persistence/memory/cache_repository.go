// Package memory provides the in-memory cache repository, used when
// Redis is disabled.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/naturalbakery/shop/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is not present or has expired.
var ErrCacheMiss = errors.New("cache miss")

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

func (i cacheItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// CacheRepository implements the cache repository interface in process
// memory.
type CacheRepository struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewCacheRepository creates a new in-memory cache repository and starts
// its background cleanup loop.
func NewCacheRepository() outbound.CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]cacheItem),
	}

	go repo.cleanup()

	return repo
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mutex.RLock()
	item, ok := r.data[key]
	r.mutex.RUnlock()

	if !ok || item.expired(time.Now()) {
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in cache with TTL. A zero TTL means no expiry.
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	item := cacheItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	r.mutex.Lock()
	r.data[key] = item
	r.mutex.Unlock()
	return nil
}

// Delete removes a value from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mutex.Lock()
	delete(r.data, key)
	r.mutex.Unlock()
	return nil
}

// cleanup periodically evicts expired entries.
func (r *CacheRepository) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mutex.Lock()
		for key, item := range r.data {
			if item.expired(now) {
				delete(r.data, key)
			}
		}
		r.mutex.Unlock()
	}
}
