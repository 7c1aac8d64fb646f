package readstore

import (
	"context"
	"strings"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	SearchRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchRoomsParams) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.findRow(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return toRoomView(row), nil
}

// Snapshot reads the room through db, which may be an open transaction.
func (r *RoomReadStore) Snapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.findRow(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:              row.ID,
		Name:            row.Name,
		Capacity:        int(row.Capacity),
		HourlyRateCents: row.HourlyRateCents,
		RoomType:        row.RoomType,
		Status:          row.Status,
	}, nil
}

// Search lists rooms in normal status matching the optional filters.
func (r *RoomReadStore) Search(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomView, error) {
	params := sqlc.SearchRoomsParams{
		MinCapacity: pgconv.IntPtrToPgtype(filter.MinCapacity),
		Features:    pgtype.Text{Valid: false},
		RoomType:    pgtype.Text{Valid: false},
	}
	if f := strings.TrimSpace(filter.Features); f != "" {
		params.Features = pgconv.StringToPgtype(f)
	}
	if filter.RoomType != "" {
		params.RoomType = pgconv.StringToPgtype(filter.RoomType)
	}

	rows, err := r.queries.SearchRooms(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(row)
	}
	return result, nil
}

func (r *RoomReadStore) findRow(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error) {
	row, err := r.queries.GetRoomByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Rooms{}, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return sqlc.Rooms{}, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return row, nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	images := row.ImageUrls
	if images == nil {
		images = []string{}
	}
	return &queries.RoomView{
		ID:              row.ID,
		Name:            row.Name,
		Capacity:        int(row.Capacity),
		Features:        row.Features,
		HourlyRateCents: row.HourlyRateCents,
		RoomType:        row.RoomType,
		Description:     row.Description,
		ImageURLs:       images,
		Status:          row.Status,
	}
}
