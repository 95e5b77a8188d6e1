package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/domain"
)

// QuoteCache is a TTL-bounded cache for computed quotes, keyed by the full
// request tuple. Purely an HTTP-adapter concern; cache misses and redis
// errors both fall through to a fresh computation.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewQuoteCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *QuoteCache {
	return &QuoteCache{client: client, ttl: ttl, logger: logger}
}

func (c *QuoteCache) Get(ctx context.Context, key string) (domain.PriceResult, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("quote cache read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.PriceResult{}, false
	}

	var result domain.PriceResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.PriceResult{}, false
	}
	return result, true
}

func (c *QuoteCache) Set(ctx context.Context, key string, result domain.PriceResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("quote cache write failed", zap.String("key", key), zap.Error(err))
	}
}
