package worker

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// ExpiredKeyPurger removes idempotency keys past their expiry.
type ExpiredKeyPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type PublishObserver func(result string)

type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxAttempts  int32
	// PurgeEvery runs the idempotency purge once per this many polls.
	PurgeEvery int
}

// NotificationDispatcher drains the notification outbox into the broker.
type NotificationDispatcher struct {
	uow       shared.UnitOfWork
	publisher Publisher
	purger    ExpiredKeyPurger
	observe   PublishObserver
	cfg       DispatcherConfig
	logger    *slog.Logger
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	publisher Publisher,
	purger ExpiredKeyPurger,
	observe PublishObserver,
	cfg DispatcherConfig,
	logger *slog.Logger,
) *NotificationDispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.PurgeEvery <= 0 {
		cfg.PurgeEvery = 60
	}
	if observe == nil {
		observe = func(string) {}
	}
	return &NotificationDispatcher{
		uow:       uow,
		publisher: publisher,
		purger:    purger,
		observe:   observe,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run polls until ctx is done.
func (d *NotificationDispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher started", "poll_interval", d.cfg.PollInterval.String())
	defer d.logger.Info("notification dispatcher stopped")

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	polls := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
			d.logger.Error("notification dispatch failed", "error", err)
		}

		polls++
		if polls%d.cfg.PurgeEvery == 0 {
			d.purgeExpiredKeys(ctx)
		}
	}
}

// DispatchOnce publishes one batch of due jobs and returns how many were sent.
// Claimed rows stay locked until the batch commits, so parallel dispatchers
// never publish the same job twice.
func (d *NotificationDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), d.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := d.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				exhausted := job.Attempts+1 >= d.cfg.MaxAttempts
				d.logger.Warn("failed to publish notification",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"exhausted", exhausted,
					"error", perr)
				d.observe("failed")
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, perr.Error(), exhausted); err != nil {
					return err
				}
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			d.observe("sent")
			sent++
		}
		return nil
	})
	return sent, err
}

func (d *NotificationDispatcher) purgeExpiredKeys(ctx context.Context) {
	n, err := d.purger.PurgeExpired(ctx)
	if err != nil {
		d.logger.Warn("failed to purge expired idempotency keys", "error", err)
		return
	}
	if n > 0 {
		d.logger.Info("purged expired idempotency keys", "count", n)
	}
}
