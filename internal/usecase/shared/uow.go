package shared

import (
	"context"

	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one read-committed transaction. fn may run more than
// once when the store reports a serialization failure or deadlock, so it must
// not have effects outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	LockRoomDate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, date reservation.Date) error
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, q reservation.OverlapQuery) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	SaveDetails(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	SaveStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error
}

type IdempotencyRepository interface {
	// Claim never fails on a live key of the same user; the caller reads the
	// stored row back to tell a fresh claim from a replay.
	Claim(ctx context.Context, tx sqlc.DBTX, c IdempotencyClaim) error
	Complete(ctx context.Context, tx sqlc.DBTX, r IdempotencyResult) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, cause string, exhausted bool) error
}

// TxOverlapCounter binds the repository's overlap count to an open transaction.
func TxOverlapCounter(tx Tx) reservation.OverlapCounter {
	return txOverlapCounter{repo: tx.Reservations(), db: tx.DB()}
}

type txOverlapCounter struct {
	repo ReservationRepository
	db   sqlc.DBTX
}

func (c txOverlapCounter) CountOverlapping(ctx context.Context, q reservation.OverlapQuery) (int64, error) {
	return c.repo.CountOverlapping(ctx, c.db, q)
}
