package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/broker"
	"room-reservation/internal/infra/metrics"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/shared"
	"room-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPublisher,
		NewNotificationDispatcher,
	),
	fx.Invoke(runDispatcher),
)

type closablePublisher interface {
	worker.Publisher
	Close() error
}

// NewPublisher publishes to RabbitMQ when AMQP_URL is set and logs events otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) worker.Publisher {
	var pub closablePublisher
	if cfg.AMQP.Enabled() {
		pub = broker.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue, logger)
	} else {
		logger.Info("AMQP_URL not set, notifications are logged only")
		pub = broker.NewLogPublisher(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	publisher worker.Publisher,
	purger worker.ExpiredKeyPurger,
	cfg config.Config,
	logger *slog.Logger,
) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(uow, publisher, purger, metrics.IncNotification, worker.DispatcherConfig{
		PollInterval: cfg.AMQP.PollInterval,
		BatchSize:    cfg.AMQP.BatchSize,
		MaxAttempts:  cfg.AMQP.MaxAttempts,
	}, logger.With("component", "notification_dispatcher"))
}

func runDispatcher(lc fx.Lifecycle, d *worker.NotificationDispatcher) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				d.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
