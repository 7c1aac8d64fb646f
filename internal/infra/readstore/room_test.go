//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/readstore"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	readstoremock "room-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRoomStore(t *testing.T) (*readstoremock.MockRoomReadQueries, *readstore.RoomReadStore, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	mockDB := &mockDBTX{}
	return mockQueries, readstore.NewRoomReadStore(mockQueries, mockDB), mockDB
}

func TestRoomReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nil image list renders empty", func(t *testing.T) {
		b := builder.NewRoomBuilder()
		mockQueries, store, mockDB := newRoomStore(t)
		mockQueries.EXPECT().GetRoomByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		view, err := store.FindByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.BuildView(), view)
		assert.NotNil(t, view.ImageURLs)
	})

	t.Run("error: room not found", func(t *testing.T) {
		mockQueries, store, mockDB := newRoomStore(t)
		mockQueries.EXPECT().GetRoomByID(ctx, mockDB, gomock.Any()).Return(sqlc.Rooms{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestRoomReadStore_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reads through the given transaction", func(t *testing.T) {
		b := builder.NewRoomBuilder()
		tx := &mockDBTX{}
		mockQueries, store, _ := newRoomStore(t)
		mockQueries.EXPECT().GetRoomByID(ctx, tx, b.ID).Return(b.BuildInfra(), nil)

		snap, err := store.Snapshot(ctx, tx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.BuildSnapshot(), snap)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		tx := &mockDBTX{}
		mockQueries, store, _ := newRoomStore(t)
		mockQueries.EXPECT().GetRoomByID(ctx, tx, gomock.Any()).Return(sqlc.Rooms{}, errors.New("boom"))

		_, err := store.Snapshot(ctx, tx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomReadStore_Search(t *testing.T) {
	ctx := context.Background()
	six := 6

	testCases := []struct {
		name   string
		filter queries.RoomFilter
		expect sqlc.SearchRoomsParams
	}{
		{
			name:   "success: no filters",
			filter: queries.RoomFilter{},
			expect: sqlc.SearchRoomsParams{
				MinCapacity: pgtype.Int4{Valid: false},
				Features:    pgtype.Text{Valid: false},
				RoomType:    pgtype.Text{Valid: false},
			},
		},
		{
			name:   "success: every filter",
			filter: queries.RoomFilter{MinCapacity: &six, Features: " projector ", RoomType: "vip"},
			expect: sqlc.SearchRoomsParams{
				MinCapacity: pgtype.Int4{Int32: 6, Valid: true},
				Features:    pgconv.StringToPgtype("projector"),
				RoomType:    pgconv.StringToPgtype("vip"),
			},
		},
		{
			name:   "success: blank features are ignored",
			filter: queries.RoomFilter{Features: "   "},
			expect: sqlc.SearchRoomsParams{
				MinCapacity: pgtype.Int4{Valid: false},
				Features:    pgtype.Text{Valid: false},
				RoomType:    pgtype.Text{Valid: false},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRoomBuilder()
			mockQueries, store, mockDB := newRoomStore(t)
			mockQueries.EXPECT().SearchRooms(ctx, mockDB, tc.expect).Return([]sqlc.Rooms{b.BuildInfra()}, nil)

			views, err := store.Search(ctx, tc.filter)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, b.ID, views[0].ID)
		})
	}

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries, store, mockDB := newRoomStore(t)
		mockQueries.EXPECT().SearchRooms(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := store.Search(ctx, queries.RoomFilter{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
