package bootstrap

import (
	"github.com/caseprepared/backend/internal/health"
	"github.com/labstack/echo/v4"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const version = "1.0.0"

func ProvideHealthHandler(
	db *gorm.DB,
	redis *redis.Client,
	qdrant *qdrant.Client,
	cfg *Config,
) *health.Handler {
	vendors := health.VendorConfig{
		OpenAI:     len(cfg.OpenAIKeys) > 0,
		Twilio:     cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "",
		AssemblyAI: cfg.AssemblyAIKey != "",
		Cloudflare: cfg.CloudflareAccountID != "" && cfg.CloudflareAPIToken != "",
		Stripe:     cfg.StripeAPIKey != "",
	}
	return health.NewHandler(db, redis, qdrant, vendors, version)
}

func metricsMiddleware(h *health.Handler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h.IncrementRequests()
			h.IncrementConnections()
			defer h.DecrementConnections()
			return next(c)
		}
	}
}

func RegisterHealthRoutes(e *echo.Echo, h *health.Handler) {
	e.Use(metricsMiddleware(h))
	h.RegisterRoutes(e)
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
	fx.Invoke(RegisterHealthRoutes),
)
