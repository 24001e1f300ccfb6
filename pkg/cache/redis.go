package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"filmorate/pkg/metrics"
	"filmorate/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores JSON encoded lookup values. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedis connects to Redis. An empty address returns a cache that always misses.
func NewRedis(ctx context.Context, config utils.RedisConfig, log *zap.Logger) (Cache, error) {
	if config.Addr == "" {
		log.Info("Redis address not configured, lookup cache disabled")
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("Connection to Redis successful", zap.String("addr", config.Addr))

	return NewRedisWithClient(client, config.TTL, log), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration, log *zap.Logger) Cache {
	return &redisCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	cached, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(namespace(key), false)
		return false, nil
	}
	if err != nil {
		c.log.Warn("Failed to read cache", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(cached, dst); err != nil {
		c.log.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	metrics.RecordCacheLookup(namespace(key), true)
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to write cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// namespace is the key prefix before the first colon.
func namespace(key string) string {
	prefix, _, _ := strings.Cut(key, ":")
	return prefix
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Close() error                                   { return nil }
