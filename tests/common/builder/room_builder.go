//go:build unit || e2e

package builder

import (
	"room-reservation/internal/domain/room"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID              uuid.UUID
	Name            string
	Capacity        int
	Features        string
	HourlyRateCents int64
	RoomType        room.Type
	Description     string
	Status          room.Status
}

// NewRoomBuilder defaults to a normal standard room for eight at 3000.00 per hour.
func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:              uuid.New(),
		Name:            "Room A",
		Capacity:        8,
		Features:        "projector,whiteboard",
		HourlyRateCents: 300000,
		RoomType:        room.TypeStandard,
		Description:     "Quiet room on the third floor",
		Status:          room.StatusNormal,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() *room.Room {
	rm, err := room.NewRoom(b.ID, b.Name, b.Capacity, b.HourlyRateCents, b.RoomType, b.Status)
	if err != nil {
		panic(err)
	}
	return rm
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:              b.ID,
		Name:            b.Name,
		Capacity:        b.Capacity,
		HourlyRateCents: b.HourlyRateCents,
		RoomType:        string(b.RoomType),
		Status:          string(b.Status),
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:              b.ID,
		Name:            b.Name,
		Capacity:        b.Capacity,
		Features:        b.Features,
		HourlyRateCents: b.HourlyRateCents,
		RoomType:        string(b.RoomType),
		Description:     b.Description,
		ImageURLs:       []string{},
		Status:          string(b.Status),
	}
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:              b.ID,
		Name:            b.Name,
		Capacity:        int32(b.Capacity),
		Features:        b.Features,
		HourlyRateCents: b.HourlyRateCents,
		RoomType:        string(b.RoomType),
		Description:     b.Description,
		ImageUrls:       nil,
		Status:          string(b.Status),
		CreatedAt:       pgconv.TimeToPgtype(BaseNow),
		UpdatedAt:       pgconv.TimeToPgtype(BaseNow),
	}
}
