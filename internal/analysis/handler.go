package analysis

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// SubscriptionChecker is the slice of the subscription store the handler
// needs for its gate. *subscription.Store satisfies it.
type SubscriptionChecker interface {
	HasUsable(ctx context.Context, userID string, now time.Time) (bool, error)
}

type Handler struct {
	service       *Service
	subscriptions SubscriptionChecker
	logger        *slog.Logger
}

func NewHandler(service *Service, subscriptions SubscriptionChecker, logger *slog.Logger) *Handler {
	return &Handler{
		service:       service,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Analyze)
}

// @Summary      Analyze an interview transcript
// @Description  Generates coaching feedback in five fixed categories from a transcript. Admins skip the subscription check.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body  dto.AnalyzeTranscriptRequest  true  "Transcript to analyze"
// @Success      200  {object}  dto.AnalyzeTranscriptResponse
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError  "Active subscription required"
// @Failure      502  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Analysis not configured"
// @Security     BearerAuth
// @Router       /analysis [post]
func (h *Handler) Analyze(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	var req dto.AnalyzeTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return shared.BadRequest("missing_transcript", "transcript is required")
	}

	if !claims.IsAdmin {
		ok, err := h.subscriptions.HasUsable(c.Request().Context(), claims.UserID, time.Now())
		if err != nil {
			h.logger.Error("failed to check subscription", "error", err, "user_id", claims.UserID)
			return shared.InternalError("subscription_check_failed", "failed to check subscription")
		}
		if !ok {
			return shared.PaymentRequired("subscription_required", "Active subscription required")
		}
	}

	feedback, err := h.service.Analyze(c.Request().Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, credential.ErrNoKeys) {
			return shared.ServiceUnavailable("analysis_unconfigured", "transcript analysis is not configured")
		}
		h.logger.Error("failed to analyze transcript", "error", err, "user_id", claims.UserID, "interview_id", req.InterviewID)
		return shared.BadGateway("analysis_failed", "failed to analyze transcript")
	}

	return c.JSON(http.StatusOK, dto.AnalyzeTranscriptResponse{
		Feedback:    *feedback,
		GeneratedAt: time.Now().UTC(),
	})
}
