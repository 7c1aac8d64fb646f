package readstore

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationDetailRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.ListReservationsByUserRow, error)
	ListActiveBookingsByRoomsAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveBookingsByRoomsAndDateParams) ([]sqlc.ListActiveBookingsByRoomsAndDateRow, error)
	CountReservationsCreatedBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsCreatedBetweenParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

// ListByUser returns the user's reservations, newest date first. An empty status matches all.
func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsByUserParams{
		UserID: userID,
		Status: pgtype.Text{Valid: false},
	}
	if status != "" {
		params.Status = pgconv.StringToPgtype(status)
	}

	rows, err := r.queries.ListReservationsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		// list and detail rows select identical columns
		result[i] = toReservationView(sqlc.GetReservationDetailRow(row))
	}
	return result, nil
}

// ActiveBookings loads every non-cancelled interval of the given rooms on date.
func (r *ReservationReadStore) ActiveBookings(ctx context.Context, roomIDs []uuid.UUID, date reservation.Date) ([]reservation.Booking, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListActiveBookingsByRoomsAndDate(ctx, r.db, sqlc.ListActiveBookingsByRoomsAndDateParams{
		RoomIds:         roomIDs,
		ReservationDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	bookings := make([]reservation.Booking, 0, len(rows))
	for _, row := range rows {
		slot, err := converter.SlotToDomain(row.StartTime, row.EndTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored interval", err, infra.KindDBFailure)
		}
		bookings = append(bookings, reservation.Booking{
			ID:     row.ID,
			RoomID: row.RoomID,
			Date:   reservation.DateOf(pgconv.DateFromPgtype(row.ReservationDate)),
			Slot:   slot,
			Status: reservation.Status(row.Status),
		})
	}
	return bookings, nil
}

func (r *ReservationReadStore) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	n, err := r.queries.CountReservationsCreatedBetween(ctx, r.db, sqlc.CountReservationsCreatedBetweenParams{
		CreatedFrom: pgconv.TimeToPgtype(from),
		CreatedTo:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func toReservationView(row sqlc.GetReservationDetailRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  row.ID,
		RoomID:              row.RoomID,
		RoomName:            row.RoomName,
		RoomType:            row.RoomType,
		UserID:              row.UserID,
		Date:                reservation.DateOf(pgconv.DateFromPgtype(row.ReservationDate)).String(),
		StartTime:           formatClock(row.StartTime),
		EndTime:             formatClock(row.EndTime),
		GuestCount:          int(row.GuestCount),
		TotalAmountCents:    row.TotalAmountCents,
		RefundAmountCents:   pgconv.Int64PtrFromPgtype(row.RefundAmountCents),
		Status:              row.Status,
		SpecialRequirements: row.SpecialRequirements,
		ContactPhone:        row.ContactPhone,
		ContactName:         row.ContactName,
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func formatClock(t pgtype.Time) string {
	tod, err := reservation.TimeOfDayFromDuration(pgconv.ClockFromPgtype(t))
	if err != nil {
		return ""
	}
	return tod.String()
}
