package reservation

import (
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Location        *time.Location
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.Local
	}
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		Location:        loc,
	}
}

type Draft struct {
	UserID     uuid.UUID
	Date       Date
	Slot       TimeSlot
	GuestCount int
	Note       Note
	Contact    Contact
}

// CreateReservation builds a pending reservation priced from the room's hourly rate.
// Availability is the caller's responsibility.
func (f *Factory) CreateReservation(rm *room.Room, d Draft) (*Reservation, error) {
	now := f.Clock.Now()
	if d.GuestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if err := EnsureBookable(d.Date, d.Slot, now, f.Location); err != nil {
		return nil, err
	}
	if rm.IsUnderMaintenance() {
		return nil, ErrRoomUnderMaintenance
	}
	if !rm.CanAccommodate(d.GuestCount) {
		return nil, ErrCapacityExceeded
	}
	if !d.Slot.MeetsMinimumDuration() {
		return nil, ErrBelowMinimumDuration
	}

	return &Reservation{
		id:          uuid.New(),
		roomID:      rm.ID(),
		userID:      d.UserID,
		date:        d.Date,
		slot:        d.Slot,
		guestCount:  d.GuestCount,
		totalAmount: f.PriceCalculator.CalculateTotal(rm.HourlyRateCents(), d.Slot),
		status:      StatusPending,
		note:        d.Note,
		contact:     d.Contact,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}
