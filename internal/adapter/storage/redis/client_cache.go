package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ClientLookupCache implements ports.ClientLookupCache using Redis. It only
// caches the (document, phone) -> client ID mapping, which is immutable once
// registered. Balances are never cached.
type ClientLookupCache struct {
	client *goredis.Client
	prefix string
}

// NewClientLookupCache creates a new Redis-backed client lookup cache.
func NewClientLookupCache(client *goredis.Client) *ClientLookupCache {
	return &ClientLookupCache{
		client: client,
		prefix: "client_lookup:",
	}
}

func (c *ClientLookupCache) key(document, phone string) string {
	return c.prefix + document + ":" + phone
}

// GetClientID retrieves a cached client ID.
// Returns found=false if the pair is not cached.
func (c *ClientLookupCache) GetClientID(ctx context.Context, document, phone string) (uuid.UUID, bool, error) {
	val, err := c.client.Get(ctx, c.key(document, phone)).Result()
	if err != nil {
		if err == goredis.Nil {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("redis client lookup get: %w", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("redis client lookup parse: %w", err)
	}
	return id, true, nil
}

// SetClientID stores a client ID under its lookup pair with TTL.
func (c *ClientLookupCache) SetClientID(ctx context.Context, document, phone string, id uuid.UUID, ttl time.Duration) error {
	err := c.client.Set(ctx, c.key(document, phone), id.String(), ttl).Err()
	if err != nil {
		return fmt.Errorf("redis client lookup set: %w", err)
	}
	return nil
}
