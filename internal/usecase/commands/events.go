package commands

import (
	"encoding/json"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKind = "reservation_event"

const (
	EventReservationCreated       = "reservation.created"
	EventReservationUpdated       = "reservation.updated"
	EventReservationStatusChanged = "reservation.status_changed"
	EventReservationCancelled     = "reservation.cancelled"
)

// ReservationEvent is the outbox payload published to the broker.
type ReservationEvent struct {
	Type              string    `json:"type"`
	ReservationID     uuid.UUID `json:"reservation_id"`
	RoomID            uuid.UUID `json:"room_id"`
	UserID            uuid.UUID `json:"user_id"`
	ActorID           uuid.UUID `json:"actor_id"`
	Date              string    `json:"date"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	Status            string    `json:"status"`
	TotalAmountCents  int64     `json:"total_amount_cents"`
	RefundAmountCents int64     `json:"refund_amount_cents"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func newNotificationJob(eventType string, res *reservation.Reservation, actorID uuid.UUID, now time.Time) (shared.NotificationJob, error) {
	payload, err := json.Marshal(ReservationEvent{
		Type:              eventType,
		ReservationID:     res.ID(),
		RoomID:            res.RoomID(),
		UserID:            res.UserID(),
		ActorID:           actorID,
		Date:              res.Date().String(),
		StartTime:         res.Slot().Start().String(),
		EndTime:           res.Slot().End().String(),
		Status:            res.Status().String(),
		TotalAmountCents:  res.TotalAmount().Cents(),
		RefundAmountCents: res.RefundAmount().Cents(),
		OccurredAt:        now,
	})
	if err != nil {
		return shared.NotificationJob{}, err
	}
	return shared.NotificationJob{
		Kind:    notificationKind,
		Topic:   eventType,
		Payload: payload,
		RunAt:   now,
	}, nil
}
