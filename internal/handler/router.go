package handler

import (
	"log/slog"
	"net/http"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// RouterDeps groups what the router wires together. Redis may be nil, which
// disables rate limiting.
type RouterDeps struct {
	Config             config.Config
	Logger             *slog.Logger
	Redis              *redis.Client
	AuthMiddleware     *middleware.AuthMiddleware
	ReservationHandler *api.ReservationHandler
	RoomHandler        *api.RoomHandler
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(middleware.LoggingMiddleware(deps.Logger, deps.Config.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := deps.AuthMiddleware
	rooms := deps.RoomHandler
	reservationsHandler := deps.ReservationHandler
	rateLimit := middleware.RateLimit(deps.Redis, deps.Config.Redis)

	v1 := engine.Group("/api/v1")
	{
		roomGroup := v1.Group("/rooms")
		// /search is registered before /:id so the static segment wins
		addRoutes(roomGroup, []route{
			{Method: http.MethodGet, Path: "/search", Handler: rooms.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: rooms.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: rooms.CheckAvailability},
			{Method: http.MethodGet, Path: "/:id/slots", Handler: rooms.SlotStatus},
		})

		reservations := v1.Group("/reservations")
		reservations.Use(auth.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationsHandler.Create, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "", Handler: reservationsHandler.List},
				{Method: http.MethodGet, Path: "/stats", Handler: reservationsHandler.Stats, Mw: []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleStaff)}},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationsHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: reservationsHandler.Update, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: reservationsHandler.UpdateStatus, Mw: []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleStaff)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationsHandler.Cancel, Mw: []gin.HandlerFunc{rateLimit}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs hs in order within one route, stopping once one aborts.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
