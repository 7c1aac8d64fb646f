package request

import (
	"strings"

	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID              uuid.UUID `json:"room_id" binding:"required"`
	Date                string    `json:"date" binding:"required,isodate"`
	StartTime           string    `json:"start_time" binding:"required,hhmm"`
	EndTime             string    `json:"end_time" binding:"required,hhmm"`
	GuestCount          int       `json:"guest_count" binding:"required,gte=1"`
	SpecialRequirements *string   `json:"special_requirements,omitempty" binding:"omitempty,max=200,safetext"`
	ContactPhone        string    `json:"contact_phone" binding:"required,phone"`
	ContactName         string    `json:"contact_name" binding:"required,max=100,safetext"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomID:              r.RoomID,
		Date:                r.Date,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		GuestCount:          r.GuestCount,
		SpecialRequirements: trimmed(r.SpecialRequirements),
		ContactPhone:        strings.TrimSpace(r.ContactPhone),
		ContactName:         strings.TrimSpace(r.ContactName),
	}
}

// UpdateReservationRequest is a partial update; omitted fields keep their value.
type UpdateReservationRequest struct {
	Date                *string `json:"date,omitempty" binding:"omitempty,isodate"`
	StartTime           *string `json:"start_time,omitempty" binding:"omitempty,hhmm"`
	EndTime             *string `json:"end_time,omitempty" binding:"omitempty,hhmm"`
	GuestCount          *int    `json:"guest_count,omitempty" binding:"omitempty,gte=1"`
	SpecialRequirements *string `json:"special_requirements,omitempty" binding:"omitempty,max=200,safetext"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		Date:                r.Date,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		GuestCount:          r.GuestCount,
		SpecialRequirements: r.SpecialRequirements,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type ListReservationsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	// UserID lets staff list another user's reservations.
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
