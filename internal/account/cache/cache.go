// Package cache holds the account snapshot cache. It is a read-path
// optimisation only: invariants like national-ID uniqueness are always
// enforced at the durable store, never against cached data.
package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/DuDupedrosa/krt-bank/internal/models"
	"github.com/DuDupedrosa/krt-bank/internal/redis"
)

const keyPrefix = "account:"

// AccountCache maps account IDs to serialised snapshots with an absolute TTL.
type AccountCache struct {
	cache *redis.Cache[models.Account]
}

// NewAccountCache creates the cache with the given absolute TTL per write.
func NewAccountCache(client *goredis.Client, ttl time.Duration) *AccountCache {
	return &AccountCache{cache: redis.NewCache[models.Account](client, ttl)}
}

// Get returns the cached snapshot for id, or (nil, false) on a miss.
func (c *AccountCache) Get(ctx context.Context, id string) (*models.Account, bool) {
	return c.cache.Get(ctx, keyPrefix+id)
}

// Save stores or refreshes the snapshot. Failures are logged downstream and
// never surfaced: the durable store already committed.
func (c *AccountCache) Save(ctx context.Context, account *models.Account) {
	c.cache.Set(ctx, keyPrefix+account.ID, account)
}

// Remove evicts the snapshot for id. Used on delete: an inactive account is
// evicted, not re-cached.
func (c *AccountCache) Remove(ctx context.Context, id string) {
	c.cache.Delete(ctx, keyPrefix+id)
}
