package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"room-reservation/internal/infra/metrics"
	"room-reservation/internal/infra/readstore"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Codes after which the whole transaction can be replayed from the top.
var retryableCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often Within replays a transaction that lost a race.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 50 * time.Millisecond}

// backoff doubles per attempt and adds up to 20% jitter so that requests
// which collided on one room do not collide again in lockstep.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.BaseDelay
	return wait + time.Duration(randInt63n(int64(wait/5)))
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return NewPostgresUoWWithPolicy(pool, q, logger, DefaultRetryPolicy)
}

func NewPostgresUoWWithPolicy(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger, policy RetryPolicy) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: policy,
		logger: logger.With("component", "uow"),
	}
}

// Within runs fn under READ COMMITTED. Admission control does not need a
// stronger level: the per room and day advisory lock serializes writers and
// the exclusion constraint backs it up.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt >= u.policy.MaxRetries {
			break
		}

		wait := u.policy.backoff(attempt)
		metrics.IncTxRetry()
		u.logger.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		// one timer per attempt; a deferred stop would pile up in the loop
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	u.logger.ErrorContext(ctx, "transaction failed after max retries",
		"attempts", u.policy.MaxRetries+1,
		"error", err.Error())
	return errs.MarkAll(err, errMaxRetriesExceeded, errs.ErrTransientStore)
}

func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.MarkAll(err, errTransactionBegin, errs.ErrTransientStore)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryableCodes[pgErr.Code]
}

func randInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked off
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}

// pgTx builds repositories lazily so a transaction only pays for what it uses.
type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	reservations  shared.ReservationRepository
	idempotency   shared.IdempotencyRepository
	notifications shared.NotificationRepository
	reads         *commandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotency
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notifications
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{
			rooms:       readstore.NewRoomReadStore(t.uow.q, t.dbtx),
			idempotency: readstore.NewIdempotencyReadStore(t.uow.q),
			dbtx:        t.dbtx,
		}
	}
	return t.reads
}

// commandReads are the reads a command makes inside its own transaction, so
// they observe the rows it has locked.
type commandReads struct {
	rooms       *readstore.RoomReadStore
	idempotency *readstore.IdempotencyReadStore
	dbtx        sqlc.DBTX
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.rooms.Snapshot(ctx, r.dbtx, id)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.idempotency.Get(ctx, r.dbtx, key, userID)
}
