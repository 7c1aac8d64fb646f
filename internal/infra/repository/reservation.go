package repository

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	LockRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.LockRoomDateParams) error
	CountOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingReservationsParams) (int64, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDetailsParams) (int64, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// LockRoomDate serialises writers of one room and day until the transaction ends.
func (r *ReservationRepository) LockRoomDate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, date reservation.Date) error {
	err := r.queries.LockRoomDate(ctx, tx, sqlc.LockRoomDateParams{
		RoomID:          roomID,
		ReservationDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lock room date", err)
	}
	return nil
}

func (r *ReservationRepository) CountOverlapping(ctx context.Context, tx sqlc.DBTX, q reservation.OverlapQuery) (int64, error) {
	n, err := r.queries.CountOverlappingReservations(ctx, tx, sqlc.CountOverlappingReservationsParams{
		RoomID:          q.RoomID,
		ReservationDate: pgconv.DateToPgtype(q.Date.Time()),
		StartTime:       pgconv.ClockToPgtype(q.Slot.Start().Offset()),
		EndTime:         pgconv.ClockToPgtype(q.Slot.End().Offset()),
		ExcludeID:       pgconv.UUIDPtrToPgtype(q.ExcludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

// FindForUpdate row-locks the reservation for the rest of the transaction.
func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) SaveDetails(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationDetails(ctx, tx, converter.ReservationDetailsToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation is no longer modifiable", nil, infra.KindConflict)
	}
	return nil
}

// SaveStatus writes the status only if the stored status still equals from.
func (r *ReservationRepository) SaveStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, converter.ReservationStatusToInfra(res, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
