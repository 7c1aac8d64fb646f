//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"
	repositorymock "room-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationRepo(t *testing.T) (*repositorymock.MockNotificationWriteQueries, *repository.NotificationRepository, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return mockQueries, repository.NewNotificationRepository(mockQueries, mockDB), mockDB
}

func TestNotificationRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	job := shared.NotificationJob{
		Kind:    "reservation",
		Topic:   "reservation.created",
		Payload: []byte(`{"reservation_id":"x"}`),
		RunAt:   builder.BaseNow,
	}

	t.Run("success: job is queued", func(t *testing.T) {
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    job.Kind,
			Topic:   job.Topic,
			Payload: job.Payload,
			RunAt:   pgconv.TimeToPgtype(job.RunAt),
			Status:  "queued",
		}).Return(nil)

		require.NoError(t, repo.Enqueue(ctx, mockDB, job))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		assertKind(t, repo.Enqueue(ctx, mockDB, job), infra.KindDBFailure)
	})
}

func TestNotificationRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()

	t.Run("success: converts claimed rows", func(t *testing.T) {
		id := uuid.New()
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, int32(10)).Return([]sqlc.NotificationJobs{{
			ID:       id,
			Kind:     "reservation",
			Topic:    "reservation.cancelled",
			Payload:  []byte(`{}`),
			RunAt:    pgconv.TimeToPgtype(builder.BaseNow),
			Attempts: 2,
			Status:   "queued",
		}}, nil)

		jobs, err := repo.ClaimPending(ctx, mockDB, 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, id, jobs[0].ID)
		assert.Equal(t, "reservation.cancelled", jobs[0].Topic)
		assert.Equal(t, int32(2), jobs[0].Attempts)
		assert.True(t, builder.BaseNow.Equal(jobs[0].RunAt))
	})

	t.Run("success: nothing due", func(t *testing.T) {
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, int32(10)).Return(nil, nil)

		jobs, err := repo.ClaimPending(ctx, mockDB, 10)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimPendingNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repo.ClaimPending(ctx, mockDB, 10)

		assertKind(t, err, infra.KindDBFailure)
	})
}

func TestNotificationRepository_StatusUpdates(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	testCases := []struct {
		name   string
		call   func(*repository.NotificationRepository, sqlc.DBTX) error
		expect sqlc.UpdateNotificationJobStatusParams
	}{
		{
			name: "success: sent clears the last error",
			call: func(r *repository.NotificationRepository, tx sqlc.DBTX) error {
				return r.MarkSent(ctx, tx, jobID)
			},
			expect: sqlc.UpdateNotificationJobStatusParams{ID: jobID, Status: "sent", LastError: pgtype.Text{Valid: false}},
		},
		{
			name: "success: a failure with attempts left is requeued",
			call: func(r *repository.NotificationRepository, tx sqlc.DBTX) error {
				return r.MarkFailed(ctx, tx, jobID, "broker unavailable", false)
			},
			expect: sqlc.UpdateNotificationJobStatusParams{ID: jobID, Status: "queued", LastError: pgconv.StringToPgtype("broker unavailable")},
		},
		{
			name: "success: an exhausted job is parked as failed",
			call: func(r *repository.NotificationRepository, tx sqlc.DBTX) error {
				return r.MarkFailed(ctx, tx, jobID, "broker unavailable", true)
			},
			expect: sqlc.UpdateNotificationJobStatusParams{ID: jobID, Status: "failed", LastError: pgconv.StringToPgtype("broker unavailable")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries, repo, mockDB := newNotificationRepo(t)
			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, tc.expect).Return(nil)

			require.NoError(t, tc.call(repo, mockDB))
		})
	}

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries, repo, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		assertKind(t, repo.MarkSent(ctx, mockDB, jobID), infra.KindDBFailure)
	})
}
