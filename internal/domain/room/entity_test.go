//go:build unit

package room_test

import (
	"testing"

	"room-reservation/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name     string
		roomName string
		capacity int
		rate     int64
		roomType room.Type
		status   room.Status
		errIs    error
	}{
		{name: "valid", roomName: "Room A", capacity: 8, rate: 300000, roomType: room.TypeStandard, status: room.StatusNormal},
		{name: "blank name", roomName: "  ", capacity: 8, roomType: room.TypeStandard, status: room.StatusNormal, errIs: room.ErrEmptyRoomName},
		{name: "zero capacity", roomName: "A", capacity: 0, roomType: room.TypeStandard, status: room.StatusNormal, errIs: room.ErrInvalidCapacity},
		{name: "negative rate", roomName: "A", capacity: 2, rate: -1, roomType: room.TypeVIP, status: room.StatusNormal, errIs: room.ErrNegativeRate},
		{name: "unknown type", roomName: "A", capacity: 2, roomType: "suite", status: room.StatusNormal, errIs: room.ErrInvalidRoomType},
		{name: "unknown status", roomName: "A", capacity: 2, roomType: room.TypeVIP, status: "closed", errIs: room.ErrInvalidRoomState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm, err := room.NewRoom(uuid.New(), tt.roomName, tt.capacity, tt.rate, tt.roomType, tt.status)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, rm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, rm.Capacity())
		})
	}
}

func TestRoom_CanAccommodate(t *testing.T) {
	rm, err := room.NewRoom(uuid.New(), "Room A", 8, 0, room.TypeStandard, room.StatusMaintenance)
	require.NoError(t, err)

	assert.True(t, rm.CanAccommodate(1))
	assert.True(t, rm.CanAccommodate(8))
	assert.False(t, rm.CanAccommodate(9))
	assert.False(t, rm.CanAccommodate(0))
	assert.True(t, rm.IsUnderMaintenance())
}
