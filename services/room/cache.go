package room

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// ListCache holds recently served rooms list responses in Redis, one entry
// per sort combination. A nil ListCache (or one without a client) is a
// no-op, so the service works unchanged without Redis.
type ListCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func listKey(sortBy, order string) string {
	return fmt.Sprintf("rooms:list:%s:%s", sortBy, order)
}

// Get returns a cached list for the sort combination, if present.
func (c *ListCache) Get(ctx context.Context, sortBy, order string) ([]models.RoomListItem, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, listKey(sortBy, order)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.RoomListItem
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("dropping undecodable rooms list cache entry", zap.Error(err))
		return nil, false
	}
	return items, true
}

// Set stores a list response for the sort combination.
func (c *ListCache) Set(ctx context.Context, sortBy, order string, items []models.RoomListItem) {
	if c == nil || c.Client == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, listKey(sortBy, order), data, c.TTL).Err(); err != nil {
		zap.L().Warn("failed to cache rooms list", zap.Error(err))
	}
}

// Invalidate drops every cached sort combination. Called after any write
// that changes rooms or their booking counts.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	keys := make([]string, 0, 4)
	for _, sortBy := range []string{models.SortByPrice, models.SortByCreatedAt} {
		for _, order := range []string{models.OrderAsc, models.OrderDesc} {
			keys = append(keys, listKey(sortBy, order))
		}
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("failed to invalidate rooms list cache", zap.Error(err))
	}
}
