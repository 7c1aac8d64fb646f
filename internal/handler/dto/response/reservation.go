package response

import (
	"time"

	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                  uuid.UUID `json:"id"`
	RoomID              uuid.UUID `json:"roomId"`
	RoomName            string    `json:"roomName"`
	RoomType            string    `json:"roomType"`
	UserID              uuid.UUID `json:"userId"`
	Date                string    `json:"date"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	GuestCount          int       `json:"guestCount"`
	TotalAmountCents    int64     `json:"totalAmountCents"`
	RefundAmountCents   *int64    `json:"refundAmountCents,omitempty"`
	Status              string    `json:"status"`
	SpecialRequirements string    `json:"specialRequirements,omitempty"`
	ContactPhone        string    `json:"contactPhone"`
	ContactName         string    `json:"contactName"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CreateReservationResponse struct {
	ReservationResponse
	Replayed bool `json:"replayed"`
}

type CancellationResponse struct {
	Success           bool   `json:"success"`
	RefundAmountCents int64  `json:"refundAmountCents"`
	Reason            string `json:"reason,omitempty"`
}

type ReservationStatsResponse struct {
	MonthTotal int64 `json:"monthTotal"`
	TodayTotal int64 `json:"todayTotal"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                  v.ID,
		RoomID:              v.RoomID,
		RoomName:            v.RoomName,
		RoomType:            v.RoomType,
		UserID:              v.UserID,
		Date:                v.Date,
		StartTime:           v.StartTime,
		EndTime:             v.EndTime,
		GuestCount:          v.GuestCount,
		TotalAmountCents:    v.TotalAmountCents,
		RefundAmountCents:   v.RefundAmountCents,
		Status:              v.Status,
		SpecialRequirements: v.SpecialRequirements,
		ContactPhone:        v.ContactPhone,
		ContactName:         v.ContactName,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromCreateResult(r *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{
		ReservationResponse: *FromReservationView(r.Reservation),
		Replayed:            r.IsReplayed,
	}
}

func FromCancellationResult(r *commands.CancellationResult) *CancellationResponse {
	return &CancellationResponse{
		Success:           r.Success,
		RefundAmountCents: r.RefundAmount,
		Reason:            r.Reason,
	}
}

func FromStats(s *queries.ReservationStats) *ReservationStatsResponse {
	return &ReservationStatsResponse{MonthTotal: s.MonthTotal, TodayTotal: s.TodayTotal}
}
