// Package cache provides Redis-backed caches for hot POS lookups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"retailops/internal/domain/catalogs/product"
)

const barcodeKeyPrefix = "product:barcode:"

// RedisProductCache implements product.Cache on top of Redis.
// Barcode scans at the register hit this before the database.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure compile-time interface compliance.
var _ product.Cache = (*RedisProductCache)(nil)

// NewRedisProductCache creates a product cache with its own Redis client.
func NewRedisProductCache(addr, password string, db int, ttl time.Duration) *RedisProductCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &RedisProductCache{client: client, ttl: ttl}
}

// Ping verifies the Redis connection.
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

// GetByBarcode returns the cached product or nil on miss.
func (c *RedisProductCache) GetByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	val, err := c.client.Get(ctx, barcodeKeyPrefix+barcode).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p product.Product
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Put stores a product under its barcode.
func (c *RedisProductCache) Put(ctx context.Context, p *product.Product) error {
	if p == nil || p.Barcode == nil || *p.Barcode == "" {
		return nil
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, barcodeKeyPrefix+*p.Barcode, payload, c.ttl).Err()
}

// Invalidate drops the cached entry for a barcode.
func (c *RedisProductCache) Invalidate(ctx context.Context, barcode string) error {
	if barcode == "" {
		return nil
	}
	return c.client.Del(ctx, barcodeKeyPrefix+barcode).Err()
}
