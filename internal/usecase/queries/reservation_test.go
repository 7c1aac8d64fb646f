//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationQueries(t *testing.T) (*queriesmock.MockReservationReadStore, queries.ReservationQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	return store, queries.NewReservationQueries(store, clock.NewFixed(builder.BaseNow), builder.JST)
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := user.NewActor(uuid.New(), user.RoleCustomer)
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = owner.UserID }).BuildView()

	testCases := []struct {
		name       string
		actor      user.Actor
		expectKind error
	}{
		{name: "success: owner", actor: owner},
		{name: "success: staff sees any reservation", actor: user.NewActor(uuid.New(), user.RoleStaff)},
		{name: "success: admin sees any reservation", actor: user.NewActor(uuid.New(), user.RoleAdmin)},
		{name: "error: another customer", actor: user.NewActor(uuid.New(), user.RoleCustomer), expectKind: errs.ErrAuthorization},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newReservationQueries(t)
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := q.GetByID(ctx, tc.actor, view.ID)

			if tc.expectKind != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("error: unknown reservation", func(t *testing.T) {
		store, q := newReservationQueries(t)
		store.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, owner, uuid.New())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	owner := user.NewActor(uuid.New(), user.RoleCustomer)
	rows := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewReservationBuilder().BuildView(),
	}

	t.Run("success: own reservations with a status filter", func(t *testing.T) {
		store, q := newReservationQueries(t)
		store.EXPECT().ListByUser(ctx, owner.UserID, "confirmed").Return(rows, nil)

		got, err := q.ListByUser(ctx, owner, owner.UserID, "confirmed")

		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("success: staff lists another user's reservations", func(t *testing.T) {
		store, q := newReservationQueries(t)
		store.EXPECT().ListByUser(ctx, owner.UserID, "").Return(rows, nil)

		got, err := q.ListByUser(ctx, user.NewActor(uuid.New(), user.RoleStaff), owner.UserID, "")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("error: customers may not list others", func(t *testing.T) {
		_, q := newReservationQueries(t)

		_, err := q.ListByUser(ctx, owner, uuid.New(), "")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAuthorization))
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		_, q := newReservationQueries(t)

		_, err := q.ListByUser(ctx, owner, owner.UserID, "archived")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestReservationQueries_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("success: counts this month and today in the booking zone", func(t *testing.T) {
		store, q := newReservationQueries(t)
		monthStart := time.Date(2030, time.June, 1, 0, 0, 0, 0, builder.JST)
		todayStart := time.Date(2030, time.June, 10, 0, 0, 0, 0, builder.JST)
		tomorrowStart := time.Date(2030, time.June, 11, 0, 0, 0, 0, builder.JST)

		gomock.InOrder(
			store.EXPECT().CountCreatedBetween(ctx, monthStart, tomorrowStart).Return(int64(42), nil),
			store.EXPECT().CountCreatedBetween(ctx, todayStart, tomorrowStart).Return(int64(3), nil),
		)

		stats, err := q.Stats(ctx, user.NewActor(uuid.New(), user.RoleAdmin))

		require.NoError(t, err)
		assert.Equal(t, int64(42), stats.MonthTotal)
		assert.Equal(t, int64(3), stats.TodayTotal)
	})

	t.Run("error: customers may not read stats", func(t *testing.T) {
		_, q := newReservationQueries(t)

		_, err := q.Stats(ctx, user.NewActor(uuid.New(), user.RoleCustomer))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAuthorization))
	})
}
