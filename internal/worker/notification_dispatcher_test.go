//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/shared"
	"room-reservation/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobUpdate struct {
	id        uuid.UUID
	status    string
	cause     string
	exhausted bool
}

type fakeOutbox struct {
	shared.NotificationRepository
	pending  []shared.NotificationJob
	claimErr error
	updates  []jobUpdate
	limit    int32
}

func (o *fakeOutbox) ClaimPending(_ context.Context, _ sqlc.DBTX, limit int32) ([]shared.NotificationJob, error) {
	o.limit = limit
	return o.pending, o.claimErr
}

func (o *fakeOutbox) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	o.updates = append(o.updates, jobUpdate{id: id, status: "sent"})
	return nil
}

func (o *fakeOutbox) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, cause string, exhausted bool) error {
	o.updates = append(o.updates, jobUpdate{id: id, status: "failed", cause: cause, exhausted: exhausted})
	return nil
}

type fakeTx struct {
	shared.Tx
	outbox *fakeOutbox
}

func (t fakeTx) Notifications() shared.NotificationRepository { return t.outbox }
func (t fakeTx) DB() sqlc.DBTX                                { return nil }

type fakeUoW struct {
	shared.UnitOfWork
	outbox *fakeOutbox
}

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{outbox: u.outbox})
}

type fakePublisher struct {
	fail   map[string]bool
	topics []string
}

func (p *fakePublisher) Publish(_ context.Context, topic string, _ []byte) error {
	if p.fail[topic] {
		return errors.New("broker unavailable")
	}
	p.topics = append(p.topics, topic)
	return nil
}

type fakePurger struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
}

func (p *fakePurger) PurgeExpired(context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls == 1 {
		close(p.done)
	}
	return 3, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationDispatcher_DispatchOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("success: publishes every claimed job", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		outbox := &fakeOutbox{pending: []shared.NotificationJob{
			{ID: a, Topic: "reservation.created"},
			{ID: b, Topic: "reservation.cancelled"},
		}}
		pub := &fakePublisher{}
		var results []string
		d := worker.NewNotificationDispatcher(fakeUoW{outbox: outbox}, pub, &fakePurger{},
			func(r string) { results = append(results, r) },
			worker.DispatcherConfig{BatchSize: 20}, discardLogger())

		sent, err := d.DispatchOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, int32(20), outbox.limit)
		assert.Equal(t, []string{"reservation.created", "reservation.cancelled"}, pub.topics)
		assert.Equal(t, []jobUpdate{{id: a, status: "sent"}, {id: b, status: "sent"}}, outbox.updates)
		assert.Equal(t, []string{"sent", "sent"}, results)
	})

	t.Run("success: a failed publish is requeued until attempts run out", func(t *testing.T) {
		fresh, last := uuid.New(), uuid.New()
		outbox := &fakeOutbox{pending: []shared.NotificationJob{
			{ID: fresh, Topic: "reservation.updated", Attempts: 0},
			{ID: last, Topic: "reservation.updated", Attempts: 2},
		}}
		pub := &fakePublisher{fail: map[string]bool{"reservation.updated": true}}
		d := worker.NewNotificationDispatcher(fakeUoW{outbox: outbox}, pub, &fakePurger{}, nil,
			worker.DispatcherConfig{MaxAttempts: 3}, discardLogger())

		sent, err := d.DispatchOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
		require.Len(t, outbox.updates, 2)
		assert.False(t, outbox.updates[0].exhausted)
		assert.True(t, outbox.updates[1].exhausted)
		assert.Equal(t, "broker unavailable", outbox.updates[1].cause)
	})

	t.Run("success: defaults apply to a zero config", func(t *testing.T) {
		outbox := &fakeOutbox{}
		d := worker.NewNotificationDispatcher(fakeUoW{outbox: outbox}, &fakePublisher{}, &fakePurger{}, nil,
			worker.DispatcherConfig{}, discardLogger())

		sent, err := d.DispatchOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
		assert.Equal(t, int32(50), outbox.limit)
	})

	t.Run("error: claim failure aborts the batch", func(t *testing.T) {
		outbox := &fakeOutbox{claimErr: errors.New("db down")}
		d := worker.NewNotificationDispatcher(fakeUoW{outbox: outbox}, &fakePublisher{}, &fakePurger{}, nil,
			worker.DispatcherConfig{}, discardLogger())

		_, err := d.DispatchOnce(ctx)

		require.Error(t, err)
		assert.Empty(t, outbox.updates)
	})
}

func TestNotificationDispatcher_RunPurgesExpiredKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	purger := &fakePurger{done: make(chan struct{})}
	d := worker.NewNotificationDispatcher(fakeUoW{outbox: &fakeOutbox{}}, &fakePublisher{}, purger, nil,
		worker.DispatcherConfig{PollInterval: time.Millisecond, PurgeEvery: 1}, discardLogger())

	stopped := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(stopped)
	}()

	select {
	case <-purger.done:
	case <-time.After(2 * time.Second):
		t.Fatal("purge did not run")
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
