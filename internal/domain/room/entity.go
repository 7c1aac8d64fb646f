package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName    = errors.New("room name cannot be empty")
	ErrInvalidCapacity  = errors.New("room capacity must be positive")
	ErrNegativeRate     = errors.New("hourly rate cannot be negative")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrInvalidRoomState = errors.New("invalid room status")
)

type Type string

const (
	TypeStandard Type = "standard"
	TypeVIP      Type = "vip"
)

func (t Type) IsValid() bool {
	return t == TypeStandard || t == TypeVIP
}

type Status string

const (
	StatusNormal      Status = "normal"
	StatusMaintenance Status = "maintenance"
)

func (s Status) IsValid() bool {
	return s == StatusNormal || s == StatusMaintenance
}

// Room is the catalog's view of a bookable room. Only the fields admission
// control depends on are modelled.
type Room struct {
	id              uuid.UUID
	name            string
	capacity        int
	hourlyRateCents int64
	roomType        Type
	status          Status
}

func NewRoom(id uuid.UUID, name string, capacity int, hourlyRateCents int64, roomType Type, status Status) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if !status.IsValid() {
		return nil, ErrInvalidRoomState
	}

	return &Room{
		id:              id,
		name:            name,
		capacity:        capacity,
		hourlyRateCents: hourlyRateCents,
		roomType:        roomType,
		status:          status,
	}, nil
}

func (r *Room) IsUnderMaintenance() bool {
	return r.status == StatusMaintenance
}

func (r *Room) CanAccommodate(guests int) bool {
	return guests > 0 && guests <= r.capacity
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Name() string           { return r.name }
func (r *Room) Capacity() int          { return r.capacity }
func (r *Room) HourlyRateCents() int64 { return r.hourlyRateCents }
func (r *Room) Type() Type             { return r.roomType }
func (r *Room) Status() Status         { return r.status }
