package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "slots"

// SlotStatusCache stores rendered slot tables per room and date.
type SlotStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotStatusCache(client *redis.Client, ttl time.Duration) *SlotStatusCache {
	return &SlotStatusCache{client: client, ttl: ttl}
}

func slotKey(roomID uuid.UUID, date reservation.Date) string {
	return fmt.Sprintf("%s:%s:%s", slotKeyPrefix, roomID, date)
}

func (c *SlotStatusCache) Get(ctx context.Context, roomID uuid.UUID, date reservation.Date) ([]queries.SlotStatusView, bool, error) {
	val, err := c.client.Get(ctx, slotKey(roomID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read slot status cache")
	}

	var slots []queries.SlotStatusView
	if err := json.Unmarshal(val, &slots); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode cached slot status")
	}
	return slots, true, nil
}

func (c *SlotStatusCache) Set(ctx context.Context, roomID uuid.UUID, date reservation.Date, slots []queries.SlotStatusView) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return errs.Wrap(err, "failed to encode slot status")
	}
	if err := c.client.Set(ctx, slotKey(roomID, date), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write slot status cache")
	}
	return nil
}

func (c *SlotStatusCache) Invalidate(ctx context.Context, roomID uuid.UUID, date reservation.Date) error {
	if err := c.client.Del(ctx, slotKey(roomID, date)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate slot status cache")
	}
	return nil
}

// NoopSlotStatusCache is used when redis is not configured.
type NoopSlotStatusCache struct{}

func (NoopSlotStatusCache) Get(context.Context, uuid.UUID, reservation.Date) ([]queries.SlotStatusView, bool, error) {
	return nil, false, nil
}

func (NoopSlotStatusCache) Set(context.Context, uuid.UUID, reservation.Date, []queries.SlotStatusView) error {
	return nil
}

func (NoopSlotStatusCache) Invalidate(context.Context, uuid.UUID, reservation.Date) error {
	return nil
}
