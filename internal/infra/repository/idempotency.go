package repository

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) error
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// IdempotencyRepository writes idempotency keys inside the caller's
// transaction. PurgeExpired runs outside one, on the pool.
type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	pool    sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, pool sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries, pool: pool}
}

// Claim inserts the key as processing. A live key of the same user is left
// as is and an expired one is taken over.
func (r *IdempotencyRepository) Claim(ctx context.Context, tx sqlc.DBTX, c shared.IdempotencyClaim) error {
	err := r.queries.TryInsertIdempotencyKey(ctx, tx, sqlc.TryInsertIdempotencyKeyParams{
		Key:         c.Key,
		UserID:      c.UserID,
		Endpoint:    c.Endpoint,
		RequestHash: c.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(c.ExpiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, res shared.IdempotencyResult) error {
	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:                 res.Key,
		UserID:              res.UserID,
		ResponseBodyHash:    pgconv.StringToPgtype(res.ResponseHash),
		ResultReservationID: pgconv.UUIDToPgtype(res.ReservationID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// PurgeExpired deletes keys past their expiry and reports how many went.
func (r *IdempotencyRepository) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.pool)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired idempotency keys", err)
	}
	return n, nil
}
