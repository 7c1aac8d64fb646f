//go:build unit

package reservation_test

import (
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"
	"room-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *reservation.Factory {
	return reservation.NewFactory(clock.NewFixed(builder.BaseNow), reservation.NewDefaultPriceCalculator(), builder.JST)
}

func draftFrom(b *builder.ReservationBuilder) reservation.Draft {
	note, _ := reservation.NewNote(b.SpecialRequirements)
	contact, _ := reservation.NewContact(b.ContactName, b.ContactPhone)
	return reservation.Draft{
		UserID:     b.UserID,
		Date:       b.Date,
		Slot:       b.Slot(),
		GuestCount: b.GuestCount,
		Note:       note,
		Contact:    contact,
	}
}

func TestFactoryCreateReservation(t *testing.T) {
	rm := builder.NewRoomBuilder().BuildDomain()

	t.Run("creates a pending reservation priced from the room rate", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := newFactory().CreateReservation(rm, draftFrom(b))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, rm.ID(), res.RoomID())
		assert.Equal(t, b.UserID, res.UserID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(600000), res.TotalAmount().Cents())
		assert.True(t, res.RefundAmount().IsZero())
		assert.Equal(t, builder.BaseNow, res.CreatedAt())
	})

	tests := []struct {
		name   string
		room   *room.Room
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "ninety minutes is too short",
			mutate: func(b *builder.ReservationBuilder) { b.WithSlot(14, 0, 15, 30) },
			errIs:  reservation.ErrBelowMinimumDuration,
		},
		{
			name:   "exactly two hours is accepted",
			mutate: func(b *builder.ReservationBuilder) { b.WithSlot(14, 0, 16, 0) },
		},
		{
			name:   "guests equal to capacity",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 8 },
		},
		{
			name:   "one guest over capacity",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 9 },
			errIs:  reservation.ErrCapacityExceeded,
		},
		{
			name:   "zero guests",
			mutate: func(b *builder.ReservationBuilder) { b.GuestCount = 0 },
			errIs:  reservation.ErrInvalidGuestCount,
		},
		{
			name:   "yesterday",
			mutate: func(b *builder.ReservationBuilder) { b.Date = reservation.DateOf(builder.BaseNow).AddDays(-1) },
			errIs:  reservation.ErrDateInPast,
		},
		{
			name: "today after a start that has passed",
			mutate: func(b *builder.ReservationBuilder) {
				b.Date = reservation.DateOf(builder.BaseNow)
				b.WithSlot(9, 0, 11, 0)
			},
			errIs: reservation.ErrStartTimeInPast,
		},
		{
			name: "today later on",
			mutate: func(b *builder.ReservationBuilder) {
				b.Date = reservation.DateOf(builder.BaseNow)
				b.WithSlot(14, 0, 16, 0)
			},
		},
		{
			name: "room under maintenance",
			room: builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) {
				r.Status = room.StatusMaintenance
			}).BuildDomain(),
			errIs: reservation.ErrRoomUnderMaintenance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			target := rm
			if tt.room != nil {
				target = tt.room
			}

			res, err := newFactory().CreateReservation(target, draftFrom(b))
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, res)
		})
	}
}
