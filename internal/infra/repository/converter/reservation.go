package converter

import (
	"fmt"
	"math"

	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:                  res.ID(),
		RoomID:              res.RoomID(),
		UserID:              res.UserID(),
		ReservationDate:     pgconv.DateToPgtype(res.Date().Time()),
		StartTime:           pgconv.ClockToPgtype(res.Slot().Start().Offset()),
		EndTime:             pgconv.ClockToPgtype(res.Slot().End().Offset()),
		GuestCount:          guestCountToInt32(res.GuestCount()),
		TotalAmountCents:    res.TotalAmount().Cents(),
		Status:              res.Status().String(),
		SpecialRequirements: res.Note().String(),
		ContactPhone:        res.Contact().Phone(),
		ContactName:         res.Contact().Name(),
	}
}

func ReservationDetailsToInfra(res *reservation.Reservation) sqlc.UpdateReservationDetailsParams {
	return sqlc.UpdateReservationDetailsParams{
		ID:                  res.ID(),
		ReservationDate:     pgconv.DateToPgtype(res.Date().Time()),
		StartTime:           pgconv.ClockToPgtype(res.Slot().Start().Offset()),
		EndTime:             pgconv.ClockToPgtype(res.Slot().End().Offset()),
		GuestCount:          guestCountToInt32(res.GuestCount()),
		SpecialRequirements: res.Note().String(),
		TotalAmountCents:    res.TotalAmount().Cents(),
	}
}

func ReservationStatusToInfra(res *reservation.Reservation, from reservation.Status) sqlc.UpdateReservationStatusParams {
	refund := pgtype.Int8{Valid: false}
	if res.Status() == reservation.StatusCancelled {
		refund = pgtype.Int8{Int64: res.RefundAmount().Cents(), Valid: true}
	}
	return sqlc.UpdateReservationStatusParams{
		Status:            res.Status().String(),
		RefundAmountCents: refund,
		ID:                res.ID(),
		FromStatus:        from.String(),
	}
}

func ReservationToDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := SlotToDomain(row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	total, err := reservation.NewMoney(row.TotalAmountCents)
	if err != nil {
		return nil, err
	}
	var refund reservation.Money
	if row.RefundAmountCents.Valid {
		if refund, err = reservation.NewMoney(row.RefundAmountCents.Int64); err != nil {
			return nil, err
		}
	}
	note, err := reservation.NewNote(row.SpecialRequirements)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.NewContact(row.ContactName, row.ContactPhone)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:           row.ID,
		RoomID:       row.RoomID,
		UserID:       row.UserID,
		Date:         reservation.DateOf(pgconv.DateFromPgtype(row.ReservationDate)),
		Slot:         slot,
		GuestCount:   int(row.GuestCount),
		TotalAmount:  total,
		RefundAmount: refund,
		Status:       status,
		Note:         note,
		Contact:      contact,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func SlotToDomain(start, end pgtype.Time) (reservation.TimeSlot, error) {
	s, err := reservation.TimeOfDayFromDuration(pgconv.ClockFromPgtype(start))
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	e, err := reservation.TimeOfDayFromDuration(pgconv.ClockFromPgtype(end))
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(s, e)
}

func guestCountToInt32(n int) int32 {
	if n > math.MaxInt32 {
		panic(fmt.Sprintf("guest count out of int32 range: %d", n))
	}
	// #nosec G115 -- range checked above
	return int32(n)
}
