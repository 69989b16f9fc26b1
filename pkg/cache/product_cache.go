package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached product views.
	ProductCacheTTL = time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized, flattened read model stored in Redis.
// It mirrors the external product view: media references are reduced to
// their URL strings, never cached as entities.
type CachedProduct struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Gender      string    `json:"gender"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
}

// ProductCache provides read/write operations for flattened product views.
// Key format: "product:{productID}". Slug/title lookups bypass the cache;
// only id-resolved reads are served from it.
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached view by product ID.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	data, err := c.client.Client().Get(ctx, c.key(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var view CachedProduct
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &view, nil
}

// Set writes a cached view with the standard TTL.
func (c *ProductCache) Set(ctx context.Context, view *CachedProduct) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(view.ID), data, ProductCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes one cached view.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Flush removes every cached product view. Used after a bulk reseed, which
// invalidates the whole keyspace at once.
func (c *ProductCache) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Client().Scan(ctx, cursor, productCacheKeyPrefix+":*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Client().Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache flush: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
