package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitbook/internal/domain/user"
	"fitbook/internal/handler/api"
	"fitbook/internal/handler/middleware"
	"fitbook/internal/pkg/config"
	"fitbook/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Coach   *api.CoachHandler
	Webhook *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.Limiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// The request logger wraps recovery so panics still produce a log line with status 500.
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := middleware.RateLimit(limiter)

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Booking.Reschedule, Mw: []gin.HandlerFunc{limited}},
			})
		}

		coach := apiGroup.Group("/coach")
		coach.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleCoach))
		{
			addRoutes(coach, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListForCoach},
			})
		}

		coaches := apiGroup.Group("/coaches/:id")
		{
			addRoutes(coaches, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Coach.Availability},
				{Method: http.MethodGet, Path: "/reviews", Handler: h.Coach.Reviews},
				{Method: http.MethodGet, Path: "/rating", Handler: h.Coach.Rating},
				{Method: http.MethodPost, Path: "/payment-status/refresh", Handler: h.Coach.RefreshPaymentStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			})
		}

		// Not rate limited: the processor delivers from a few shared IPs and retries on 429,
		// which would only delay confirmations. Unsigned requests are rejected before any write.
		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payments", Handler: h.Webhook.Payments},
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
