package middleware

import (
	"log/slog"
	"slices"

	"venue-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Booking clients rely on these even when the env lists are overridden.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", "Idempotency-Key"}
	requiredExposeHeaders = []string{"Idempotent-Replayed"}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
