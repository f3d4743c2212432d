package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paws/shelter-backend/internal/core/domain"
)

const (
	availableKey = "animals:available"
	listingTTL   = time.Minute
)

// ListingCache caches the AVAILABLE-animals listing in Redis. The public
// listing is by far the hottest read path; mutations invalidate the key.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// GetAvailable returns the cached listing and whether the key was present.
func (c *ListingCache) GetAvailable(ctx context.Context) ([]*domain.Animal, bool, error) {
	raw, err := c.client.Get(ctx, availableKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("listing cache get: %w", err)
	}

	var animals []*domain.Animal
	if err := json.Unmarshal(raw, &animals); err != nil {
		return nil, false, fmt.Errorf("listing cache decode: %w", err)
	}
	return animals, true, nil
}

// SetAvailable stores the listing (expires after listingTTL).
func (c *ListingCache) SetAvailable(ctx context.Context, animals []*domain.Animal) error {
	raw, err := json.Marshal(animals)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, availableKey, raw, listingTTL).Err()
}

// Invalidate drops the cached listing after any animal mutation.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, availableKey).Err()
}
