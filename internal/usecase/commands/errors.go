package commands

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
)

var (
	ErrRoomIDRequired       = errs.New("room_id is required")
	ErrUserIDRequired       = errs.New("user_id is required")
	ErrContactRequired      = errs.New("contact_phone and contact_name are required")
	ErrStartEndTogether     = errs.New("start_time and end_time must be given together")
	ErrReplayMissingResult  = errs.New("completed idempotency key has no reservation")
	ErrUnexpectedStoredRoom = errs.New("stored room is invalid")
)

var (
	validationErrs = []error{
		reservation.ErrInvalidDate,
		reservation.ErrInvalidTimeOfDay,
		reservation.ErrInvalidTimeSlot,
		reservation.ErrNoteTooLong,
		reservation.ErrContactRequired,
		reservation.ErrInvalidGuestCount,
		reservation.ErrDateInPast,
		reservation.ErrStartTimeInPast,
		reservation.ErrBelowMinimumDuration,
		reservation.ErrNoChanges,
		reservation.ErrInvalidStatus,
	}
	stateErrs = []error{
		reservation.ErrRoomUnderMaintenance,
		reservation.ErrTerminalStatus,
		reservation.ErrAlreadyStarted,
		reservation.ErrIllegalTransition,
	}
)

// classifyDomainErr marks a domain rule violation with its use case error kind.
func classifyDomainErr(err error) error {
	if err == nil || errs.KindOf(err) != nil {
		return err
	}
	if errs.Is(err, reservation.ErrCapacityExceeded) {
		return errs.MarkAll(err, errs.ErrCapacityExceeded, errs.ErrConflict)
	}
	if errs.Is(err, reservation.ErrRoomUnderMaintenance) {
		return errs.MarkAll(err, errs.ErrRoomUnderMaintenance, errs.ErrState)
	}
	for _, ref := range validationErrs {
		if errs.Is(err, ref) {
			return errs.Mark(err, errs.ErrValidation)
		}
	}
	for _, ref := range stateErrs {
		if errs.Is(err, ref) {
			return errs.Mark(err, errs.ErrState)
		}
	}
	return err
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func conflictErr() error {
	return errs.Mark(errs.ErrReservationConflict, errs.ErrConflict)
}

func authorizationErr(err error) error {
	return errs.Mark(err, errs.ErrAuthorization)
}
