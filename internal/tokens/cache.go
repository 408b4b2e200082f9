package tokens

import (
	"context"
	"strconv"
	"time"

	"github.com/eventrave/eventrave-backend/pkg/logger"
	"github.com/eventrave/eventrave-backend/pkg/redis"
)

// cacheTTL bounds how long a token lookup is served without touching the
// database. Rotation drops entries eagerly, so the TTL only limits drift
// when the invalidation itself fails.
const cacheTTL = time.Hour

// Cache resolves token keys to user ids without a database round trip.
// Implementations must treat every failure as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (userID uint64, ok bool)
	Set(ctx context.Context, key string, userID uint64)
	Forget(ctx context.Context, key string)
}

// NopCache satisfies Cache when no cache backend is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (uint64, bool) { return 0, false }
func (NopCache) Set(context.Context, string, uint64)        {}
func (NopCache) Forget(context.Context, string)             {}

type redisCache struct {
	client *redis.Client
	logg   *logger.Logger
}

// NewRedisCache adapts the shared Redis client into a token cache. The
// cache is advisory only; the tokens table stays authoritative.
func NewRedisCache(client *redis.Client, logg *logger.Logger) Cache {
	if client == nil {
		return NopCache{}
	}
	return &redisCache{client: client, logg: logg}
}

func (c *redisCache) Get(ctx context.Context, key string) (uint64, bool) {
	raw, err := c.client.Get(ctx, c.client.AuthTokenKey(key))
	if err != nil {
		if !redis.IsMiss(err) {
			c.warn(ctx, "token cache read failed", err)
		}
		return 0, false
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.Forget(ctx, key)
		return 0, false
	}
	return userID, true
}

func (c *redisCache) Set(ctx context.Context, key string, userID uint64) {
	if err := c.client.Set(ctx, c.client.AuthTokenKey(key), strconv.FormatUint(userID, 10), cacheTTL); err != nil {
		c.warn(ctx, "token cache write failed", err)
	}
}

func (c *redisCache) Forget(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.client.AuthTokenKey(key)); err != nil {
		c.warn(ctx, "token cache delete failed", err)
	}
}

func (c *redisCache) warn(ctx context.Context, msg string, err error) {
	if c.logg != nil {
		c.logg.Warn(ctx, msg+": "+err.Error())
	}
}
