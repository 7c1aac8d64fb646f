package response

import (
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Features        string    `json:"features"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	RoomType        string    `json:"roomType"`
	Description     string    `json:"description"`
	ImageURLs       []string  `json:"imageUrls"`
	Status          string    `json:"status"`
}

type SlotStatusResponse struct {
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

type RoomAvailabilityResponse struct {
	Room  RoomResponse         `json:"room"`
	Date  string               `json:"date"`
	Slots []SlotStatusResponse `json:"slots"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Available bool      `json:"available"`
}

type SlotTableResponse struct {
	RoomID uuid.UUID            `json:"roomId"`
	Date   string               `json:"date"`
	Slots  []SlotStatusResponse `json:"slots"`
}

func FromSlotStatusViews(vs []queries.SlotStatusView) []SlotStatusResponse {
	out := make([]SlotStatusResponse, len(vs))
	for i, v := range vs {
		out[i] = SlotStatusResponse{
			Label:     v.Label,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			Available: v.Available,
			Status:    v.Status,
		}
	}
	return out
}

func FromRoomAvailabilityView(v *queries.RoomAvailabilityView) *RoomAvailabilityResponse {
	return &RoomAvailabilityResponse{
		Room: RoomResponse{
			ID:              v.Room.ID,
			Name:            v.Room.Name,
			Capacity:        v.Room.Capacity,
			Features:        v.Room.Features,
			HourlyRateCents: v.Room.HourlyRateCents,
			RoomType:        v.Room.RoomType,
			Description:     v.Room.Description,
			ImageURLs:       v.Room.ImageURLs,
			Status:          v.Room.Status,
		},
		Date:  v.Date,
		Slots: FromSlotStatusViews(v.Slots),
	}
}

func FromRoomAvailabilityViews(vs []*queries.RoomAvailabilityView) []*RoomAvailabilityResponse {
	out := make([]*RoomAvailabilityResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRoomAvailabilityView(v)
	}
	return out
}
