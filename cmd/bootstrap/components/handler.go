package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHallHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewRevenueHandler,
		func(pool *pgxpool.Pool) *api.HealthHandler {
			return api.NewHealthHandler(pool)
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
