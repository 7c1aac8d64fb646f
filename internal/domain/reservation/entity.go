package reservation

import (
	"errors"
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrDateInPast           = errors.New("reservation date is in the past")
	ErrStartTimeInPast      = errors.New("start time has already passed")
	ErrBelowMinimumDuration = errors.New("reservation must last at least two hours")
	ErrInvalidGuestCount    = errors.New("guest count must be positive")
	ErrCapacityExceeded     = errors.New("guest count exceeds room capacity")
	ErrRoomUnderMaintenance = errors.New("room is under maintenance")
	ErrTerminalStatus       = errors.New("reservation is already cancelled or completed")
	ErrAlreadyStarted       = errors.New("reservation has already started")
	ErrNoChanges            = errors.New("no fields to update")
)

type Reservation struct {
	id           uuid.UUID
	roomID       uuid.UUID
	userID       uuid.UUID
	date         Date
	slot         TimeSlot
	guestCount   int
	totalAmount  Money
	refundAmount Money
	status       Status
	note         Note
	contact      Contact
	createdAt    time.Time
	updatedAt    time.Time
}

type ReconstructParams struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	UserID       uuid.UUID
	Date         Date
	Slot         TimeSlot
	GuestCount   int
	TotalAmount  Money
	RefundAmount Money
	Status       Status
	Note         Note
	Contact      Contact
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructReservation(p ReconstructParams) *Reservation {
	return &Reservation{
		id:           p.ID,
		roomID:       p.RoomID,
		userID:       p.UserID,
		date:         p.Date,
		slot:         p.Slot,
		guestCount:   p.GuestCount,
		totalAmount:  p.TotalAmount,
		refundAmount: p.RefundAmount,
		status:       p.Status,
		note:         p.Note,
		contact:      p.Contact,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// EnsureBookable rejects dates before today and, for today, a start that has passed.
func EnsureBookable(date Date, slot TimeSlot, now time.Time, loc *time.Location) error {
	today := DateOf(now.In(loc))
	if date.Before(today) {
		return ErrDateInPast
	}
	if date.Equal(today) && date.At(slot.Start(), loc).Before(now) {
		return ErrStartTimeInPast
	}
	return nil
}

func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.date.At(r.slot.Start(), loc)
}

func (r *Reservation) HasStarted(now time.Time, loc *time.Location) bool {
	return !now.Before(r.StartsAt(loc))
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Changes carries the optional fields of an amendment. Nil means unchanged.
type Changes struct {
	Date       *Date
	Start      *TimeOfDay
	End        *TimeOfDay
	GuestCount *int
	Note       *Note
}

func (c Changes) IsEmpty() bool {
	return c.Date == nil && c.Start == nil && c.End == nil && c.GuestCount == nil && c.Note == nil
}

// Amendment is the merged result of Changes over the stored reservation.
type Amendment struct {
	Date            Date
	Slot            TimeSlot
	GuestCount      int
	Note            Note
	ScheduleChanged bool
}

func (r *Reservation) ensureMutable(now time.Time, loc *time.Location) error {
	if r.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if r.HasStarted(now, loc) {
		return ErrAlreadyStarted
	}
	return nil
}

// PlanAmendment merges changes and validates everything that needs no store access.
func (r *Reservation) PlanAmendment(changes Changes, now time.Time, loc *time.Location) (Amendment, error) {
	if changes.IsEmpty() {
		return Amendment{}, ErrNoChanges
	}
	if err := r.ensureMutable(now, loc); err != nil {
		return Amendment{}, err
	}

	date := patch.Coalesce(changes.Date, r.date)
	slot, err := NewTimeSlot(
		patch.Coalesce(changes.Start, r.slot.Start()),
		patch.Coalesce(changes.End, r.slot.End()),
	)
	if err != nil {
		return Amendment{}, err
	}
	if !slot.MeetsMinimumDuration() {
		return Amendment{}, ErrBelowMinimumDuration
	}

	guests := patch.Coalesce(changes.GuestCount, r.guestCount)
	if guests <= 0 {
		return Amendment{}, ErrInvalidGuestCount
	}
	note := patch.Coalesce(changes.Note, r.note)

	a := Amendment{
		Date:            date,
		Slot:            slot,
		GuestCount:      guests,
		Note:            note,
		ScheduleChanged: !date.Equal(r.date) || !slot.Equal(r.slot),
	}
	if a.ScheduleChanged {
		if err := EnsureBookable(date, slot, now, loc); err != nil {
			return Amendment{}, err
		}
	}
	return a, nil
}

// ApplyAmendment checks capacity against the room and recomputes the total when the interval moved.
func (r *Reservation) ApplyAmendment(a Amendment, rm *room.Room, calc PriceCalculator, now time.Time) error {
	if !rm.CanAccommodate(a.GuestCount) {
		return ErrCapacityExceeded
	}
	if a.ScheduleChanged {
		r.totalAmount = calc.CalculateTotal(rm.HourlyRateCents(), a.Slot)
	}
	r.date = a.Date
	r.slot = a.Slot
	r.guestCount = a.GuestCount
	r.note = a.Note
	r.updatedAt = now
	return nil
}

func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if r.status.IsTerminal() {
		return ErrTerminalStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Cancel moves the reservation to cancelled and returns the refund the policy grants.
func (r *Reservation) Cancel(now time.Time, loc *time.Location, policy RefundPolicy) (Money, error) {
	if err := r.ensureMutable(now, loc); err != nil {
		return Money{}, err
	}
	if err := r.TransitionTo(StatusCancelled, now); err != nil {
		return Money{}, err
	}
	r.refundAmount = policy.RefundFor(r.totalAmount, r.StartsAt(loc).Sub(now))
	return r.refundAmount, nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) GuestCount() int      { return r.guestCount }
func (r *Reservation) TotalAmount() Money   { return r.totalAmount }
func (r *Reservation) RefundAmount() Money  { return r.refundAmount }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Note() Note           { return r.note }
func (r *Reservation) Contact() Contact     { return r.contact }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
