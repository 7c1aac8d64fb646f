package queries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room catalog data
type RoomView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Features        string    `json:"features"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	RoomType        string    `json:"room_type"`
	Description     string    `json:"description"`
	ImageURLs       []string  `json:"image_urls"`
	Status          string    `json:"status"`
}

// SlotStatusView is one row of a rendered slot table
type SlotStatusView struct {
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
}

type RoomAvailabilityView struct {
	Room  RoomView         `json:"room"`
	Date  string           `json:"date"`
	Slots []SlotStatusView `json:"slots"`
}

type ReservationView struct {
	ID                  uuid.UUID `json:"id"`
	RoomID              uuid.UUID `json:"room_id"`
	RoomName            string    `json:"room_name"`
	RoomType            string    `json:"room_type"`
	UserID              uuid.UUID `json:"user_id"`
	Date                string    `json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	GuestCount          int       `json:"guest_count"`
	TotalAmountCents    int64     `json:"total_amount_cents"`
	RefundAmountCents   *int64    `json:"refund_amount_cents,omitempty"`
	Status              string    `json:"status"`
	SpecialRequirements string    `json:"special_requirements"`
	ContactPhone        string    `json:"contact_phone"`
	ContactName         string    `json:"contact_name"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ReservationStats counts confirmed and completed reservations by creation time
type ReservationStats struct {
	MonthTotal int64 `json:"month_total"`
	TodayTotal int64 `json:"today_total"`
}
