package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Hall    *api.HallHandler
	Slot    *api.SlotHandler
	Booking *api.BookingHandler
	Revenue *api.RevenueHandler
	Health  *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", h.Health.Check)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()
	customer := authMiddleware.RequireRoleAtLeast(user.RoleCustomer)
	hallOwner := authMiddleware.RequireRoleAtLeast(user.RoleHallOwner)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		halls := apiGroup.Group("/halls")
		{
			addRoutes(halls, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Hall.List, Mw: []gin.HandlerFunc{optionalAuth}},
				{Method: http.MethodPost, Path: "", Handler: h.Hall.Create, Mw: []gin.HandlerFunc{requireAuth, hallOwner}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hall.Get, Mw: []gin.HandlerFunc{optionalAuth}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Hall.Update, Mw: []gin.HandlerFunc{requireAuth, hallOwner}},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Hall.Approve, Mw: []gin.HandlerFunc{requireAuth, admin}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Hall.Reject, Mw: []gin.HandlerFunc{requireAuth, admin}},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slot.List, Mw: []gin.HandlerFunc{optionalAuth}},
				{Method: http.MethodPost, Path: "/:id/slots", Handler: h.Slot.Create, Mw: []gin.HandlerFunc{requireAuth, hallOwner}},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: h.Hall.RatingStats},
			})
		}

		slots := apiGroup.Group("/slots")
		slots.Use(requireAuth)
		{
			addRoutes(slots, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Slot.Delete, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Slot.Cancel},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Booking.MarkNoShow, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPut, Path: "/:id/feedback", Handler: h.Booking.SubmitFeedback},
			})
		}

		revenue := apiGroup.Group("/revenue")
		revenue.Use(requireAuth)
		{
			addRoutes(revenue, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Revenue.List, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Revenue.Summary, Mw: []gin.HandlerFunc{hallOwner}},
				{Method: http.MethodPost, Path: "/:bookingId/refund", Handler: h.Revenue.Refund, Mw: []gin.HandlerFunc{admin}},
			})
		}
	}
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
