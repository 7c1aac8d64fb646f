package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the ownership check; used for read-after-write and replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID, status string) ([]*ReservationView, error)
	Stats(ctx context.Context, actor user.Actor) (*ReservationStats, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*ReservationView, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type reservationQueriesImpl struct {
	repo  ReservationReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewReservationQueries(repo ReservationReadStore, clk clock.Clock, loc *time.Location) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, clock: clk, loc: loc}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(view.UserID) {
		return nil, errs.Mark(errs.ErrNotReservationOwner, errs.ErrAuthorization)
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

// ListByUser returns the reservations of userID, newest first. Customers may
// only list their own; an empty status lists every status.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, userID uuid.UUID, status string) ([]*ReservationView, error) {
	if !actor.CanManage(userID) {
		return nil, errs.Mark(errs.ErrNotReservationOwner, errs.ErrAuthorization)
	}
	if status != "" {
		if _, err := reservation.ParseStatus(status); err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}

	rows, err := q.repo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	return rows, nil
}

// Stats counts confirmed and completed reservations created this month and today.
func (q *reservationQueriesImpl) Stats(ctx context.Context, actor user.Actor) (*ReservationStats, error) {
	if !actor.IsPrivileged() {
		return nil, errs.Mark(errs.ErrPrivilegedRoleOnly, errs.ErrAuthorization)
	}

	now := clock.LocalNow(q.clock, q.loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, q.loc)
	tomorrow := todayStart.AddDate(0, 0, 1)

	month, err := q.repo.CountCreatedBetween(ctx, monthStart, tomorrow)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	today, err := q.repo.CountCreatedBetween(ctx, todayStart, tomorrow)
	if err != nil {
		return nil, shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	}
	return &ReservationStats{MonthTotal: month, TodayTotal: today}, nil
}
