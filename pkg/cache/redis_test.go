package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-valid-url")
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "redis://localhost:19999")
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestClientOptions(t *testing.T) {
	opts, err := clientOptions("redis://:secret@cache.internal:6380/2")
	if err != nil {
		t.Fatalf("clientOptions: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("url not applied: addr=%q db=%d", opts.Addr, opts.DB)
	}
	if opts.PoolSize != 10 || opts.ReadTimeout != 500*time.Millisecond || opts.DialTimeout != connectTimeout {
		t.Errorf("pool settings not applied: %+v", opts)
	}
}

func TestNewItemCache_NilClient(t *testing.T) {
	if c := NewItemCache(nil); c != nil {
		t.Fatalf("expected nil cache for nil client, got %#v", c)
	}
}

func TestRedisClient_CloseNil(t *testing.T) {
	var rc *RedisClient
	if err := rc.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}

func TestKey(t *testing.T) {
	if got := Key("abc-123"); got != "item:abc-123" {
		t.Errorf("Key() = %q", got)
	}
}

func TestEncodeDecodeItem(t *testing.T) {
	in := &CachedItem{
		ID:        "abc",
		SellerID:  300000,
		Name:      "Bicycle",
		Price:     1500,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC),
	}
	fields := encodeItem(in)

	vals := make(map[string]string, len(fields))
	for k, v := range fields {
		vals[k] = v.(string)
	}
	out, err := decodeItem(vals)
	if err != nil {
		t.Fatalf("decodeItem: %v", err)
	}
	if out.ID != in.ID || out.SellerID != in.SellerID || out.Name != in.Name ||
		out.Price != in.Price || !out.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("decoded %+v, want %+v", out, in)
	}
}

func TestDecodeItem_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		vals map[string]string
	}{
		{"bad seller", map[string]string{"seller_id": "x", "price": "1", "created_at": "2026-01-01T00:00:00Z"}},
		{"bad price", map[string]string{"seller_id": "300000", "price": "x", "created_at": "2026-01-01T00:00:00Z"}},
		{"bad created_at", map[string]string{"seller_id": "300000", "price": "1", "created_at": "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeItem(tt.vals); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestIsMiss(t *testing.T) {
	if !IsMiss(redis.Nil) {
		t.Error("redis.Nil should be a miss")
	}
	if IsMiss(context.Canceled) {
		t.Error("context.Canceled should not be a miss")
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping_Success", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("ItemCache_RoundTrip", func(t *testing.T) {
		c := NewItemCache(rc)
		item := &CachedItem{
			ID:        "cache-integration-test",
			SellerID:  300000,
			Name:      "Lamp",
			Price:     99,
			CreatedAt: time.Now().UTC(),
		}
		drop := func() { _ = rc.rdb.Del(ctx, Key(item.ID)).Err() }
		drop()
		defer drop()

		if err := c.Set(ctx, item); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != item.Name || got.Price != item.Price || !got.CreatedAt.Equal(item.CreatedAt) {
			t.Errorf("got %+v, want %+v", got, item)
		}
		if ttl := rc.rdb.TTL(ctx, Key(item.ID)).Val(); ttl <= 0 || ttl > ItemCacheTTL {
			t.Errorf("TTL = %v, want (0, %v]", ttl, ItemCacheTTL)
		}
	})
}
