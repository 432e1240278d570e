package bootstrap

import (
	"log/slog"

	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default, which the
// repositories and workers log through.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
