package commands

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateStatus force-transitions a reservation. Only staff and admins may call it;
// a cancellation through this path refunds nothing.
func (r *reservationUseCaseImpl) UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status string) (*queries.ReservationView, error) {
	if !actor.IsPrivileged() {
		r.metrics.ReservationOutcome("update_status", "forbidden")
		return nil, authorizationErr(errs.ErrPrivilegedRoleOnly)
	}
	next, err := reservation.ParseStatus(status)
	if err != nil {
		r.metrics.ReservationOutcome("update_status", "rejected")
		return nil, validationErr(err)
	}

	var res *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, uerr := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if uerr != nil {
			return shared.ClassifyStoreErr(uerr, errs.ErrReservationNotFound)
		}

		from := found.Status()
		if uerr = found.TransitionTo(next, r.clock.Now()); uerr != nil {
			return classifyDomainErr(uerr)
		}
		if uerr = tx.Reservations().SaveStatus(ctx, tx.DB(), found, from); uerr != nil {
			return r.classifyStatusWrite(uerr)
		}
		res = found
		return r.enqueue(ctx, tx, EventReservationStatusChanged, found, actor.UserID)
	})
	if err != nil {
		r.metrics.ReservationOutcome("update_status", outcomeOf(err))
		return nil, err
	}

	if next == reservation.StatusCancelled {
		r.invalidate(ctx, res.RoomID(), res.Date())
	}
	r.metrics.ReservationOutcome("update_status", "success")
	r.logger.InfoContext(ctx, "reservation status changed",
		"reservation_id", id,
		"status", next.String(),
		"actor_id", actor.UserID)

	return r.reservationQueries.GetByIDSystem(ctx, id)
}

// Cancel locks the reservation, re-validates it is cancellable, and writes the
// cancelled status with its refund in one transaction. Only the owner may cancel.
func (r *reservationUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*CancellationResult, error) {
	var res *reservation.Reservation
	var refund reservation.Money
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, uerr := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if uerr != nil {
			return shared.ClassifyStoreErr(uerr, errs.ErrReservationNotFound)
		}
		if !found.IsOwnedBy(actor.UserID) {
			return authorizationErr(errs.ErrNotReservationOwner)
		}

		from := found.Status()
		amount, uerr := found.Cancel(r.clock.Now(), r.loc, r.refundPolicy)
		if uerr != nil {
			return classifyDomainErr(uerr)
		}
		if uerr = tx.Reservations().SaveStatus(ctx, tx.DB(), found, from); uerr != nil {
			return r.classifyStatusWrite(uerr)
		}
		res, refund = found, amount
		return r.enqueue(ctx, tx, EventReservationCancelled, found, actor.UserID)
	})
	if err != nil {
		r.metrics.ReservationOutcome("cancel", outcomeOf(err))
		return &CancellationResult{Success: false, Reason: reasonOf(err)}, err
	}

	r.invalidate(ctx, res.RoomID(), res.Date())
	r.metrics.ReservationOutcome("cancel", "success")
	r.metrics.RefundIssued(refund.Cents())
	r.logger.InfoContext(ctx, "reservation cancelled",
		"reservation_id", id,
		"refund_cents", refund.Cents())

	return &CancellationResult{Success: true, RefundAmount: refund.Cents()}, nil
}

// classifyStatusWrite reports a guarded update that matched no row as a state
// change that lost a race.
func (r *reservationUseCaseImpl) classifyStatusWrite(err error) error {
	classified := shared.ClassifyStoreErr(err, errs.ErrReservationNotFound)
	if errs.Is(classified, errs.ErrReservationConflict) {
		return errs.Mark(reservation.ErrIllegalTransition, errs.ErrState)
	}
	return classified
}

// reasonOf returns a message safe to show to the caller.
func reasonOf(err error) string {
	switch errs.KindOf(err) {
	case errs.ErrNotFound:
		return errs.ErrReservationNotFound.Error()
	case errs.ErrAuthorization:
		return errs.ErrNotReservationOwner.Error()
	case errs.ErrState:
		for _, ref := range []error{reservation.ErrAlreadyStarted, reservation.ErrTerminalStatus, reservation.ErrIllegalTransition} {
			if errs.Is(err, ref) {
				return ref.Error()
			}
		}
		return errs.ErrState.Error()
	case errs.ErrTransientStore:
		return errs.ErrTransientStore.Error()
	default:
		return "cancellation failed"
	}
}
