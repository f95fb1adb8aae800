package feed

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/redisx"
)

// DefaultTTL bounds how stale a cached page may get.
const DefaultTTL = 3 * time.Minute

// Cache is the independently-expiring side store for serialized feed
// pages. There is no write-back and no proactive invalidation; entries
// only expire.
type Cache interface {
	GetPage(ctx context.Context, key string) ([]TweetSnapshot, bool)
	SetPage(ctx context.Context, key string, items []TweetSnapshot)
}

type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(c *redisx.Client, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{rdb: c.R, ttl: ttl}
}

func (c *redisCache) GetPage(ctx context.Context, key string) ([]TweetSnapshot, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("feed cache get %q: %v", key, err)
		}
		return nil, false
	}
	var items []TweetSnapshot
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("feed cache decode %q: %v", key, err)
		return nil, false
	}
	return items, true
}

func (c *redisCache) SetPage(ctx context.Context, key string, items []TweetSnapshot) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("feed cache encode %q: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("feed cache set %q: %v", key, err)
	}
}
