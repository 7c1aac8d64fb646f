package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/cache"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewSlotCache,
		func(c slotCache) queries.SlotStatusCache { return c },
		func(c slotCache) commands.SlotCacheInvalidator { return c },
	),
)

type slotCache interface {
	queries.SlotStatusCache
	commands.SlotCacheInvalidator
}

// NewRedis returns nil when no address is configured; the slot cache then
// becomes a no-op and rate limiting is off.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled() {
		logger.Info("redis disabled, slot cache and rate limiting are off")
		return nil
	}
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := cache.Ping(ctx, client); err != nil {
				// cache and rate limit both tolerate an unreachable server
				logger.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewSlotCache(client *redis.Client, cfg config.Config) slotCache {
	if client == nil {
		return cache.NoopSlotStatusCache{}
	}
	return cache.NewSlotStatusCache(client, cfg.Redis.SlotCacheTTL)
}
