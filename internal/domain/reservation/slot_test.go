//go:build unit

package reservation_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSlotCatalog(t *testing.T) {
	catalog := reservation.DefaultSlotCatalog()
	slots := catalog.Slots()

	require.Len(t, slots, 6)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
		assert.True(t, s.Time.MeetsMinimumDuration(), s.Label)
	}
	assert.Equal(t, []string{
		"09:00-11:00", "11:30-13:30", "14:00-16:00",
		"16:30-18:30", "19:00-21:00", "21:30-23:30",
	}, labels)
	assert.Equal(t, "09:00-23:30", catalog.OpeningWindow().String())
}

func TestNewSlotCatalog_RejectsOverlap(t *testing.T) {
	a, _ := reservation.NewTimeSlot(reservation.MustTimeOfDay(9, 0), reservation.MustTimeOfDay(11, 0))
	b, _ := reservation.NewTimeSlot(reservation.MustTimeOfDay(10, 0), reservation.MustTimeOfDay(12, 0))

	_, err := reservation.NewSlotCatalog(reservation.Slot{Label: "a", Time: a}, reservation.Slot{Label: "b", Time: b})
	assert.ErrorIs(t, err, reservation.ErrInvalidSlotCatalog)

	_, err = reservation.NewSlotCatalog()
	assert.ErrorIs(t, err, reservation.ErrInvalidSlotCatalog)
}

func TestSlotCatalogRender(t *testing.T) {
	roomID := uuid.New()
	booked := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = roomID
	}).WithSlot(14, 0, 16, 0)
	cancelled := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = roomID
	}).WithSlot(19, 0, 21, 0).WithStatus(reservation.StatusCancelled)
	otherRoom := builder.NewReservationBuilder().WithSlot(9, 0, 11, 0)

	checker := reservation.NewAvailabilityChecker(reservation.NewOccupancy([]reservation.Booking{
		booked.BuildBooking(), cancelled.BuildBooking(), otherRoom.BuildBooking(),
	}))

	statuses, err := reservation.DefaultSlotCatalog().Render(context.Background(), checker, roomID, booked.Date)
	require.NoError(t, err)
	require.Len(t, statuses, 6)

	for _, s := range statuses {
		if s.Slot.Label == "14:00-16:00" {
			assert.False(t, s.Available)
			assert.Equal(t, reservation.TagOccupied, s.Tag)
			continue
		}
		assert.True(t, s.Available, s.Slot.Label)
		assert.Equal(t, reservation.TagAvailable, s.Tag)
	}
}
