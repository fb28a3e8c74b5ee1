// Package listcache caches the serialized doctors and appointments list
// payloads in Redis. The keys mirror the client-side query-cache keys the
// web app uses, and doctor mutations invalidate the doctors key the same
// way the client invalidates its query on a successful mutation.
package listcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medibook/backend-go/internal/config"
)

// Fixed cache keys shared with the web client.
const (
	KeyDoctors      = "getDoctors"
	KeyAppointments = "getAppointments"
)

// Cache wraps the redis client with list-payload helpers. A nil *Cache is
// valid and degrades every call to a miss, so callers never branch on
// whether Redis is up.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// New creates a Cache connected to the configured Redis instance.
func New(cfg *config.Config, logger *slog.Logger) (*Cache, error) {
	logger.Info("🔌 [ListCache] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDatabase,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [ListCache] Redis connection established")

	return &Cache{
		client: client,
		logger: logger,
		ttl:    time.Duration(cfg.ListCacheTTL) * time.Second,
	}, nil
}

// NewForTesting creates a Cache with a provided redis.Client (for testing)
func NewForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
		ttl:    time.Duration(cfg.ListCacheTTL) * time.Second,
	}
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Get loads the cached payload under key into dest. The boolean reports a
// hit; Redis errors are logged and reported as misses so the caller falls
// through to the store.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("⚠️ [ListCache] Failed to read key, treating as miss",
				"key", key,
				"error", err,
			)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("⚠️ [ListCache] Failed to unmarshal cached payload, treating as miss",
			"key", key,
			"error", err,
		)
		return false
	}

	c.logger.Debug("📖 [ListCache] Cache hit", "key", key)
	return true
}

// Set stores the payload under key with the configured TTL. Failures are
// logged and swallowed: a broken cache must never fail the request.
func (c *Cache) Set(ctx context.Context, key string, payload interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("⚠️ [ListCache] Failed to marshal payload", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("⚠️ [ListCache] Failed to store payload", "key", key, "error", err)
		return
	}

	c.logger.Debug("💾 [ListCache] Stored payload", "key", key, "ttl", c.ttl)
}

// Invalidate drops the cached payload under key so the next read hits the
// store again.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("⚠️ [ListCache] Failed to invalidate key", "key", key, "error", err)
		return
	}

	c.logger.Debug("🗑️ [ListCache] Invalidated key", "key", key)
}
