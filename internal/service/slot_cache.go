package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const slotCacheKeyPrefix = "slots:"

// SlotCache keeps recently computed slot lists in Redis for a short TTL.
// Entries are snapshots keyed by consultation type and date range; every
// booking mutation invalidates the whole namespace, so a stale entry can
// only ever be as old as the TTL.
//
// All methods degrade gracefully: a nil cache or a Redis failure means the
// caller recomputes, never an error.
type SlotCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotCache {
	return &SlotCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

// Key builds the cache key for one availability query.
func (c *SlotCache) Key(consultationTypeID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", slotCacheKeyPrefix, consultationTypeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// Get returns the cached slot list for key, if present.
func (c *SlotCache) Get(ctx context.Context, key string) ([]entity.TimeSlot, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read slot cache %s: %+v", key, err)
		}
		return nil, false
	}

	var slots []entity.TimeSlot
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.log.Warnf("Failed to decode slot cache %s: %+v", key, err)
		return nil, false
	}

	return slots, true
}

// Set stores a computed slot list under key for the configured TTL.
func (c *SlotCache) Set(ctx context.Context, key string, slots []entity.TimeSlot) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warnf("Failed to encode slot cache %s: %+v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write slot cache %s: %+v", key, err)
	}
}

// Invalidate drops every cached slot list. Called after any booking
// mutation since a single booking can affect many query ranges.
func (c *SlotCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, slotCacheKeyPrefix+"*").Result()
	if err != nil {
		c.log.Warnf("Failed to list slot cache keys: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate slot cache: %+v", err)
	}
}
