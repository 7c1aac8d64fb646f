//go:build unit

package commands_test

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the transactional store. Writes are
// applied immediately; tests that need rollback assert on the returned error.
type fakeStore struct {
	rooms        map[uuid.UUID]*shared.RoomSnapshot
	reservations map[uuid.UUID]*reservation.Reservation
	keys         map[uuid.UUID]*shared.IdempotencyRecord
	jobs         []shared.NotificationJob

	overlapQueries []reservation.OverlapQuery
	locks          int
	saveStatusErr  error
	claimErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:        map[uuid.UUID]*shared.RoomSnapshot{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		keys:         map[uuid.UUID]*shared.IdempotencyRecord{},
	}
}

func (s *fakeStore) addRoom(snap *shared.RoomSnapshot) {
	s.rooms[snap.ID] = snap
}

func (s *fakeStore) addReservation(res *reservation.Reservation) {
	s.reservations[res.ID()] = res
}

// fakeUoW runs fn once against the store.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Reservations() shared.ReservationRepository   { return fakeReservations{store: t.store} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository     { return fakeIdempotency{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return fakeNotifications{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                    { return fakeReads{store: t.store} }
func (t *fakeTx) DB() sqlc.DBTX                                 { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.store.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.store.keys[key]
	if !ok || rec.UserID != userID {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	cp := *rec
	return &cp, nil
}

type fakeReservations struct {
	store *fakeStore
}

func (r fakeReservations) LockRoomDate(context.Context, sqlc.DBTX, uuid.UUID, reservation.Date) error {
	r.store.locks++
	return nil
}

func (r fakeReservations) CountOverlapping(ctx context.Context, _ sqlc.DBTX, q reservation.OverlapQuery) (int64, error) {
	r.store.overlapQueries = append(r.store.overlapQueries, q)
	bookings := make([]reservation.Booking, 0, len(r.store.reservations))
	for _, res := range r.store.reservations {
		bookings = append(bookings, reservation.Booking{
			ID:     res.ID(),
			RoomID: res.RoomID(),
			Date:   res.Date(),
			Slot:   res.Slot(),
			Status: res.Status(),
		})
	}
	return reservation.NewOccupancy(bookings).CountOverlapping(ctx, q)
}

func (r fakeReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	r.store.reservations[res.ID()] = res
	return res.ID(), nil
}

func (r fakeReservations) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r fakeReservations) SaveDetails(context.Context, sqlc.DBTX, *reservation.Reservation) error {
	return nil
}

func (r fakeReservations) SaveStatus(context.Context, sqlc.DBTX, *reservation.Reservation, reservation.Status) error {
	return r.store.saveStatusErr
}

type fakeIdempotency struct {
	store *fakeStore
}

func (f fakeIdempotency) Claim(_ context.Context, _ sqlc.DBTX, c shared.IdempotencyClaim) error {
	if f.store.claimErr != nil {
		return f.store.claimErr
	}
	if _, ok := f.store.keys[c.Key]; ok {
		return nil
	}
	f.store.keys[c.Key] = &shared.IdempotencyRecord{
		Key:         c.Key,
		UserID:      c.UserID,
		Status:      "processing",
		RequestHash: c.RequestHash,
		ExpiresAt:   c.ExpiresAt,
	}
	return nil
}

func (f fakeIdempotency) Complete(_ context.Context, _ sqlc.DBTX, r shared.IdempotencyResult) error {
	rec := f.store.keys[r.Key]
	rec.Status = "completed"
	rec.ResultReservationID = &r.ReservationID
	return nil
}

type fakeNotifications struct {
	store *fakeStore
}

func (n fakeNotifications) Enqueue(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) error {
	n.store.jobs = append(n.store.jobs, job)
	return nil
}

func (n fakeNotifications) ClaimPending(context.Context, sqlc.DBTX, int32) ([]shared.NotificationJob, error) {
	return nil, nil
}

func (n fakeNotifications) MarkSent(context.Context, sqlc.DBTX, uuid.UUID) error {
	return nil
}

func (n fakeNotifications) MarkFailed(context.Context, sqlc.DBTX, uuid.UUID, string, bool) error {
	return nil
}
