package components

import (
	"log/slog"

	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/handler/validation"
	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		validation.Register,
		newRouter,
	),
)

func newRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	redisClient *redis.Client,
	authMiddleware *middleware.AuthMiddleware,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
) {
	handler.NewRouter(engine, handler.RouterDeps{
		Config:             cfg,
		Logger:             logger,
		Redis:              redisClient,
		AuthMiddleware:     authMiddleware,
		ReservationHandler: reservationHandler,
		RoomHandler:        roomHandler,
	})
}
