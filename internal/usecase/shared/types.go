package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID              uuid.UUID
	Name            string
	Capacity        int
	HourlyRateCents int64
	RoomType        string
	Status          string
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

// IdempotencyClaim is one caller's first use of a key on an endpoint.
type IdempotencyClaim struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

// IdempotencyResult is what a replay of a completed key returns.
type IdempotencyResult struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	ReservationID uuid.UUID
	ResponseHash  string
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
