//go:build unit

package commands_test

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReservationCommandsTestSuite) TestUpdateStatus() {
	ctx := context.Background()

	s.Run("success: staff confirms a pending reservation", func() {
		s.SetupTest()
		res := s.reservationFor(s.customer).BuildDomain()
		s.store.addReservation(res)

		s.metrics.EXPECT().ReservationOutcome("update_status", "success")
		s.expectViewOf(ctx)

		view, err := s.uc.UpdateStatus(ctx, s.staff, res.ID(), "confirmed")

		s.Require().NoError(err)
		s.Equal(res.ID(), view.ID)
		s.Equal(reservation.StatusConfirmed, res.Status())
		s.Require().Len(s.store.jobs, 1)
		s.Equal(commands.EventReservationStatusChanged, s.store.jobs[0].Topic)
	})

	s.Run("success: forced cancellation frees the slot without a refund", func() {
		s.SetupTest()
		res := s.reservationFor(s.customer).WithStatus(reservation.StatusConfirmed).BuildDomain()
		s.store.addReservation(res)

		s.cache.EXPECT().Invalidate(ctx, s.room.ID, res.Date()).Return(nil)
		s.metrics.EXPECT().ReservationOutcome("update_status", "success")
		s.expectViewOf(ctx)

		admin := user.NewActor(uuid.New(), user.RoleAdmin)
		_, err := s.uc.UpdateStatus(ctx, admin, res.ID(), "cancelled")

		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, res.Status())
		s.True(res.RefundAmount().IsZero())
	})

	testCases := []struct {
		name       string
		actor      func(s *ReservationCommandsTestSuite) user.Actor
		from       reservation.Status
		target     string
		missing    bool
		saveErr    error
		outcome    string
		expectKind error
		expectErr  error
	}{
		{
			name:       "error: customers may not force a status",
			actor:      func(s *ReservationCommandsTestSuite) user.Actor { return s.customer },
			from:       reservation.StatusPending,
			target:     "confirmed",
			outcome:    "forbidden",
			expectKind: errs.ErrAuthorization,
			expectErr:  errs.ErrPrivilegedRoleOnly,
		},
		{
			name:       "error: unknown status",
			from:       reservation.StatusPending,
			target:     "archived",
			outcome:    "rejected",
			expectKind: errs.ErrValidation,
		},
		{
			name:       "error: pending cannot jump to completed",
			from:       reservation.StatusPending,
			target:     "completed",
			outcome:    "illegal_state",
			expectKind: errs.ErrState,
			expectErr:  reservation.ErrIllegalTransition,
		},
		{
			name:       "error: cancelled is terminal",
			from:       reservation.StatusCancelled,
			target:     "confirmed",
			outcome:    "illegal_state",
			expectKind: errs.ErrState,
			expectErr:  reservation.ErrTerminalStatus,
		},
		{
			name:       "error: completed is terminal",
			from:       reservation.StatusCompleted,
			target:     "cancelled",
			outcome:    "illegal_state",
			expectKind: errs.ErrState,
			expectErr:  reservation.ErrTerminalStatus,
		},
		{
			name:       "error: concurrent status change wins",
			from:       reservation.StatusPending,
			target:     "confirmed",
			saveErr:    infra.WrapRepoErr("status changed concurrently", nil, infra.KindConflict),
			outcome:    "illegal_state",
			expectKind: errs.ErrState,
			expectErr:  reservation.ErrIllegalTransition,
		},
		{
			name:       "error: unknown reservation",
			target:     "confirmed",
			missing:    true,
			outcome:    "not_found",
			expectKind: errs.ErrNotFound,
			expectErr:  errs.ErrReservationNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			id := uuid.New()
			if !tc.missing {
				res := s.reservationFor(s.customer).WithStatus(tc.from).BuildDomain()
				s.store.addReservation(res)
				id = res.ID()
			}
			s.store.saveStatusErr = tc.saveErr
			actor := s.staff
			if tc.actor != nil {
				actor = tc.actor(s)
			}
			s.metrics.EXPECT().ReservationOutcome("update_status", tc.outcome)

			view, err := s.uc.UpdateStatus(ctx, actor, id, tc.target)

			s.Require().Error(err)
			s.Nil(view)
			s.True(errs.Is(err, tc.expectKind), "expected kind %v, got %v", tc.expectKind, err)
			if tc.expectErr != nil {
				s.True(errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
			}
			s.Empty(s.store.jobs)
		})
	}
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCancel() {
	ctx := context.Background()
	today := reservation.DateOf(builder.BaseNow)

	refunds := []struct {
		name         string
		arrange      func(*builder.ReservationBuilder)
		expectRefund int64
	}{
		{
			name:         "success: a day or more ahead refunds in full",
			arrange:      func(b *builder.ReservationBuilder) {},
			expectRefund: 600000,
		},
		{
			name: "success: exactly two hours ahead refunds half",
			arrange: func(b *builder.ReservationBuilder) {
				b.Date = today
				b.WithSlot(12, 0, 14, 0)
			},
			expectRefund: 300000,
		},
		{
			name: "success: less than two hours ahead refunds nothing",
			arrange: func(b *builder.ReservationBuilder) {
				b.Date = today
				b.WithSlot(11, 0, 13, 0)
			},
			expectRefund: 0,
		},
	}

	for _, tc := range refunds {
		s.Run(tc.name, func() {
			s.SetupTest()
			b := s.reservationFor(s.customer).WithStatus(reservation.StatusConfirmed)
			tc.arrange(b)
			res := b.BuildDomain()
			s.store.addReservation(res)

			s.cache.EXPECT().Invalidate(ctx, s.room.ID, res.Date()).Return(nil)
			s.metrics.EXPECT().ReservationOutcome("cancel", "success")
			s.metrics.EXPECT().RefundIssued(tc.expectRefund)

			result, err := s.uc.Cancel(ctx, s.customer, res.ID())

			s.Require().NoError(err)
			s.True(result.Success)
			s.Equal(tc.expectRefund, result.RefundAmount)
			s.Empty(result.Reason)
			s.Equal(reservation.StatusCancelled, res.Status())
			s.Equal(tc.expectRefund, res.RefundAmount().Cents())
			s.Require().Len(s.store.jobs, 1)
			s.Equal(commands.EventReservationCancelled, s.store.jobs[0].Topic)
		})
	}

	s.Run("success: a pending reservation can be cancelled", func() {
		s.SetupTest()
		res := s.reservationFor(s.customer).BuildDomain()
		s.store.addReservation(res)

		s.cache.EXPECT().Invalidate(ctx, s.room.ID, gomock.Any()).Return(nil)
		s.metrics.EXPECT().ReservationOutcome("cancel", "success")
		s.metrics.EXPECT().RefundIssued(int64(600000))

		result, err := s.uc.Cancel(ctx, s.customer, res.ID())
		s.Require().NoError(err)
		s.True(result.Success)
	})

	s.Run("success: the refund tier follows the clock", func() {
		s.SetupTest()
		res := s.reservationFor(s.customer).BuildDomain()
		s.store.addReservation(res)
		// tomorrow 09:00, five hours before the 14:00 start
		s.clock.Advance(23 * time.Hour)

		s.cache.EXPECT().Invalidate(ctx, s.room.ID, res.Date()).Return(nil)
		s.metrics.EXPECT().ReservationOutcome("cancel", "success")
		s.metrics.EXPECT().RefundIssued(int64(300000))

		result, err := s.uc.Cancel(ctx, s.customer, res.ID())
		s.Require().NoError(err)
		s.Equal(int64(300000), result.RefundAmount)
	})

	failures := []struct {
		name         string
		arrange      func(*builder.ReservationBuilder)
		actor        func(s *ReservationCommandsTestSuite) user.Actor
		missing      bool
		saveErr      error
		outcome      string
		expectKind   error
		expectReason string
	}{
		{
			name: "error: started reservation",
			arrange: func(b *builder.ReservationBuilder) {
				b.Date = today
				b.WithSlot(9, 0, 11, 0)
			},
			outcome:      "illegal_state",
			expectKind:   errs.ErrState,
			expectReason: reservation.ErrAlreadyStarted.Error(),
		},
		{
			name: "error: starting right now counts as started",
			arrange: func(b *builder.ReservationBuilder) {
				b.Date = today
				b.WithSlot(10, 0, 12, 0)
			},
			outcome:      "illegal_state",
			expectKind:   errs.ErrState,
			expectReason: reservation.ErrAlreadyStarted.Error(),
		},
		{
			name:         "error: already cancelled",
			arrange:      func(b *builder.ReservationBuilder) { b.WithStatus(reservation.StatusCancelled) },
			outcome:      "illegal_state",
			expectKind:   errs.ErrState,
			expectReason: reservation.ErrTerminalStatus.Error(),
		},
		{
			name:         "error: completed",
			arrange:      func(b *builder.ReservationBuilder) { b.WithStatus(reservation.StatusCompleted) },
			outcome:      "illegal_state",
			expectKind:   errs.ErrState,
			expectReason: reservation.ErrTerminalStatus.Error(),
		},
		{
			name:         "error: only the owner may cancel",
			actor:        func(s *ReservationCommandsTestSuite) user.Actor { return s.staff },
			outcome:      "forbidden",
			expectKind:   errs.ErrAuthorization,
			expectReason: errs.ErrNotReservationOwner.Error(),
		},
		{
			name:         "error: lost a concurrent status change",
			saveErr:      infra.WrapRepoErr("status changed concurrently", nil, infra.KindConflict),
			outcome:      "illegal_state",
			expectKind:   errs.ErrState,
			expectReason: reservation.ErrIllegalTransition.Error(),
		},
		{
			name:         "error: unknown reservation",
			missing:      true,
			outcome:      "not_found",
			expectKind:   errs.ErrNotFound,
			expectReason: errs.ErrReservationNotFound.Error(),
		},
	}

	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.SetupTest()
			id := uuid.New()
			if !tc.missing {
				b := s.reservationFor(s.customer).WithStatus(reservation.StatusConfirmed)
				if tc.arrange != nil {
					tc.arrange(b)
				}
				res := b.BuildDomain()
				s.store.addReservation(res)
				id = res.ID()
			}
			s.store.saveStatusErr = tc.saveErr
			actor := s.customer
			if tc.actor != nil {
				actor = tc.actor(s)
			}
			s.metrics.EXPECT().ReservationOutcome("cancel", tc.outcome)

			result, err := s.uc.Cancel(ctx, actor, id)

			s.Require().Error(err)
			s.True(errs.Is(err, tc.expectKind), "expected kind %v, got %v", tc.expectKind, err)
			s.Require().NotNil(result)
			s.False(result.Success)
			s.Zero(result.RefundAmount)
			s.Equal(tc.expectReason, result.Reason)
			s.Empty(s.store.jobs)
		})
	}
}
