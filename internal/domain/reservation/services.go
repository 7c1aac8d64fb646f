package reservation

import (
	"context"

	"github.com/google/uuid"
)

type OverlapQuery struct {
	RoomID    uuid.UUID
	Date      Date
	Slot      TimeSlot
	ExcludeID *uuid.UUID
}

// OverlapCounter counts active reservations overlapping the query interval.
type OverlapCounter interface {
	CountOverlapping(ctx context.Context, q OverlapQuery) (int64, error)
}

type AvailabilityChecker struct {
	counter OverlapCounter
}

func NewAvailabilityChecker(counter OverlapCounter) *AvailabilityChecker {
	return &AvailabilityChecker{counter: counter}
}

func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID uuid.UUID, date Date, slot TimeSlot) (bool, error) {
	return c.check(ctx, OverlapQuery{RoomID: roomID, Date: date, Slot: slot})
}

// IsAvailableExcluding ignores the reservation being amended.
func (c *AvailabilityChecker) IsAvailableExcluding(ctx context.Context, roomID uuid.UUID, date Date, slot TimeSlot, excludeID uuid.UUID) (bool, error) {
	return c.check(ctx, OverlapQuery{RoomID: roomID, Date: date, Slot: slot, ExcludeID: &excludeID})
}

func (c *AvailabilityChecker) check(ctx context.Context, q OverlapQuery) (bool, error) {
	if !q.Slot.Start().Before(q.Slot.End()) {
		return false, ErrInvalidTimeSlot
	}
	n, err := c.counter.CountOverlapping(ctx, q)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Booking is an occupied interval already known to the caller.
type Booking struct {
	ID     uuid.UUID
	RoomID uuid.UUID
	Date   Date
	Slot   TimeSlot
	Status Status
}

// Occupancy counts overlaps against a preloaded set of bookings. Queries use it
// to render many slots from a single read.
type Occupancy struct {
	bookings []Booking
}

func NewOccupancy(bookings []Booking) *Occupancy {
	return &Occupancy{bookings: bookings}
}

func (o *Occupancy) CountOverlapping(_ context.Context, q OverlapQuery) (int64, error) {
	var n int64
	for _, b := range o.bookings {
		if b.RoomID != q.RoomID || !b.Date.Equal(q.Date) || !b.Status.IsActive() {
			continue
		}
		if q.ExcludeID != nil && b.ID == *q.ExcludeID {
			continue
		}
		if b.Slot.Overlaps(q.Slot) {
			n++
		}
	}
	return n, nil
}
