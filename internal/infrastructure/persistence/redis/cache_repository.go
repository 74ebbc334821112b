// Package redis provides the Redis-backed cache repository.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naturalbakery/shop/internal/infrastructure/config"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when a key is not present.
var ErrCacheMiss = errors.New("cache miss")

// NewClient creates a Redis client from configuration and verifies the
// connection with a ping.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// CacheRepository implements the cache repository interface over Redis
type CacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository creates a new Redis cache repository
func NewCacheRepository(client *redis.Client, logger *zap.Logger) outbound.CacheRepository {
	return &CacheRepository{
		client: client,
		logger: logger.Named("redis-cache"),
	}
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		r.logger.Debug("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Debug("Cache set failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a value from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Debug("Cache delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
