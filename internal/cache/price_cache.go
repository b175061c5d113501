package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/redis/go-redis/v9"
)

const priceTableKey = "prices:table"

type PriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPriceCache(client *redis.Client, ttl time.Duration) *PriceCache {
	return &PriceCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (c *PriceCache) Get(ctx context.Context) (*entities.PriceTable, error) {
	raw, err := c.client.Get(ctx, priceTableKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var table entities.PriceTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *PriceCache) Set(ctx context.Context, table entities.PriceTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, priceTableKey, raw, c.ttl).Err()
}

func (c *PriceCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, priceTableKey).Err()
}
