package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipeshare/recipe-api/internal/core/domain"
)

const defaultListingTTL = 5 * time.Minute

// ListingCache caches dashboard recipe listings as JSON blobs with a short
// TTL. Key format: dashboard:<view>[:<param>...].
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = defaultListingTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// GetRecipes returns the cached listing for key. ok is false on a miss;
// a Redis or decode failure surfaces as an error so callers can degrade to
// the database without poisoning the cache.
func (c *ListingCache) GetRecipes(ctx context.Context, key string) ([]domain.Recipe, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return recipes, true, nil
}

// SetRecipes stores the listing under key with the configured TTL.
func (c *ListingCache) SetRecipes(ctx context.Context, key string, recipes []domain.Recipe) error {
	raw, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
