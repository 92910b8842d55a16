package subscription

import (
	"log/slog"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// Gate blocks paid features for users without a usable subscription.
type Gate struct {
	store  *Store
	logger *slog.Logger
}

func NewGate(store *Store, logger *slog.Logger) *Gate {
	return &Gate{store: store, logger: logger}
}

func (g *Gate) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := auth.GetClaims(c)
		if claims == nil {
			return shared.Unauthorized("auth_required", "authentication required")
		}

		ok, err := g.store.HasUsable(c.Request().Context(), claims.UserID, time.Now())
		if err != nil {
			g.logger.Error("failed to check subscription", "error", err, "user_id", claims.UserID)
			return shared.InternalError("subscription_check_failed", "failed to check subscription")
		}
		if !ok {
			return shared.PaymentRequired("subscription_required", "Active subscription required")
		}

		return next(c)
	}
}
