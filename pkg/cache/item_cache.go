package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items. Item attributes never
	// change after creation, so the TTL only bounds memory use.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the read model stored in Redis. Statistics are deliberately
// absent: they change independently and are always read from the database.
type CachedItem struct {
	ID        string
	SellerID  int64
	Name      string
	Price     int64
	CreatedAt time.Time
}

// ItemCache provides structured read/write operations for item cache entries.
// Key format: "item:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
// A nil client yields a nil cache; callers treat that as caching disabled.
func NewItemCache(r *RedisClient) *ItemCache {
	if r == nil {
		return nil
	}
	return &ItemCache{client: r}
}

// IsMiss reports whether err means the key does not exist or has expired.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Get retrieves a cached item by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID string) (*CachedItem, error) {
	vals, err := c.client.rdb.HGetAll(ctx, Key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return decodeItem(vals)
}

// Set writes a cached item as a Redis hash.
// Uses a pipeline to set all fields and the TTL in one round trip.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := Key(item.ID)
	pipe := c.client.rdb.TxPipeline()
	pipe.HSet(ctx, key, encodeItem(item))
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Key builds the Redis key for an item.
func Key(itemID string) string {
	return itemCacheKeyPrefix + ":" + itemID
}

func encodeItem(item *CachedItem) map[string]any {
	return map[string]any{
		"id":         item.ID,
		"seller_id":  strconv.FormatInt(item.SellerID, 10),
		"name":       item.Name,
		"price":      strconv.FormatInt(item.Price, 10),
		"created_at": item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeItem(vals map[string]string) (*CachedItem, error) {
	sellerID, err := strconv.ParseInt(vals["seller_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse seller_id: %w", err)
	}
	price, err := strconv.ParseInt(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	return &CachedItem{
		ID:        vals["id"],
		SellerID:  sellerID,
		Name:      vals["name"],
		Price:     price,
		CreatedAt: createdAt,
	}, nil
}
