package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gigwire/identity-go/internal/domain/model"
)

// DefaultActiveProfileTTL bounds how stale a cached active-profile pointer
// can get before the durable source is consulted again.
const DefaultActiveProfileTTL = 5 * time.Minute

// ActiveProfileCache is a Redis-backed read-through cache for the active
// profile pointer. It implements service.ActiveContextCache; callers treat
// every failure as a miss, so this adapter only reports errors, never
// interprets them.
type ActiveProfileCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewActiveProfileCache creates an ActiveProfileCache with the default TTL.
func NewActiveProfileCache(client redis.UniversalClient) *ActiveProfileCache {
	return &ActiveProfileCache{
		client: client,
		prefix: "active_profile:",
		ttl:    DefaultActiveProfileTTL,
	}
}

// NewActiveProfileCacheWithTTL creates an ActiveProfileCache with a custom TTL.
func NewActiveProfileCacheWithTTL(client redis.UniversalClient, ttl time.Duration) *ActiveProfileCache {
	c := NewActiveProfileCache(client)
	c.ttl = ttl
	return c
}

func (c *ActiveProfileCache) Get(ctx context.Context, personID string) (model.ProfileRef, bool, error) {
	if personID == "" {
		return model.ProfileRef{}, false, nil
	}

	data, err := c.client.Get(ctx, c.prefix+personID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ProfileRef{}, false, nil
		}
		return model.ProfileRef{}, false, fmt.Errorf("redis get: %w", err)
	}

	var ref model.ProfileRef
	if unmarshalErr := json.Unmarshal([]byte(data), &ref); unmarshalErr != nil {
		return model.ProfileRef{}, false, fmt.Errorf("unmarshal active profile ref: %w", unmarshalErr)
	}
	return ref, true, nil
}

func (c *ActiveProfileCache) Set(ctx context.Context, personID string, ref model.ProfileRef) error {
	if personID == "" {
		return errors.New("person ID cannot be empty")
	}

	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("marshal active profile ref: %w", err)
	}
	return c.client.Set(ctx, c.prefix+personID, data, c.ttl).Err()
}

func (c *ActiveProfileCache) Invalidate(ctx context.Context, personID string) error {
	if personID == "" {
		return nil
	}
	return c.client.Del(ctx, c.prefix+personID).Err()
}
