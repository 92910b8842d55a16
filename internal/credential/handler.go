package credential

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
	"github.com/labstack/echo/v4"
)

// InterviewRef is the slice of an interview the credential endpoints need
// for ownership checks.
type InterviewRef struct {
	ID         string
	UserID     string
	TemplateID string
	Status     string
}

// InterviewSource resolves interviews without binding this package to the
// interview store.
type InterviewSource interface {
	Find(ctx context.Context, id string) (*InterviewRef, error)
}

// TemplateSource hydrates the case template behind an interview. Satisfied
// by the template store.
type TemplateSource interface {
	GetByID(ctx context.Context, id string) (*template.Template, error)
}

type Handler struct {
	service    *Service
	interviews InterviewSource
	templates  TemplateSource
	logger     *slog.Logger
}

func NewHandler(service *Service, interviews InterviewSource, templates TemplateSource, logger *slog.Logger) *Handler {
	return &Handler{
		service:    service,
		interviews: interviews,
		templates:  templates,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/turn-credentials", h.TURNCredentials)
	g.POST("/openai-ephemeral-key", h.EphemeralKey)
}

// @Summary      Get TURN credentials
// @Description  Returns ICE servers for WebRTC setup, from Twilio when configured and a STUN fallback otherwise
// @Tags         webrtc
// @Produce      json
// @Param        ttl  query  int  false  "Credential lifetime in seconds (clamped to 300..604800)"
// @Success      200  {object}  dto.WebRTCTURNResponse
// @Failure      401  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /webrtc/turn-credentials [get]
func (h *Handler) TURNCredentials(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	ttl, _ := strconv.Atoi(c.QueryParam("ttl"))
	creds := h.service.GenerateTURNCredentials(c.Request().Context(), ttl)
	if creds.Fallback {
		h.logger.Info("issued fallback turn credentials", "user_id", claims.UserID)
	}
	return c.JSON(http.StatusOK, creds.WebRTCResponse())
}

// @Summary      Mint an OpenAI Realtime session
// @Description  Issues an ephemeral Realtime session for one interview question; degrades to a placeholder session when the vendor is unreachable
// @Tags         webrtc
// @Accept       json
// @Produce      json
// @Param        request  body  dto.EphemeralKeyRequest  true  "Interview and question"
// @Success      200  {object}  dto.SessionTokenResponse
// @Failure      400  {object}  shared.APIError  "Question number out of range"
// @Failure      403  {object}  shared.APIError  "Interview belongs to another user"
// @Failure      404  {object}  shared.APIError  "Interview not found"
// @Security     BearerAuth
// @Router       /webrtc/openai-ephemeral-key [post]
func (h *Handler) EphemeralKey(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	var req dto.EphemeralKeyRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.InterviewID == "" {
		return shared.BadRequest("missing_interview_id", "interview_id is required")
	}

	ctx := c.Request().Context()
	ref, err := h.interviews.Find(ctx, req.InterviewID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("interview_not_found", "interview not found")
		}
		h.logger.Error("failed to look up interview", "error", err, "interview_id", req.InterviewID)
		return shared.InternalError("lookup_failed", "failed to look up interview")
	}
	if ref.UserID != claims.UserID {
		h.logger.Warn("ephemeral key denied for non-owner", "interview_id", ref.ID, "user_id", claims.UserID)
		return shared.Forbidden("not_interview_owner", "not authorized to access this interview")
	}
	if req.QuestionNumber < 1 || req.QuestionNumber > 4 {
		return shared.BadRequest("invalid_question_number", "question number must be between 1 and 4")
	}

	tmpl := h.loadTemplate(ctx, ref.TemplateID)
	token := h.service.GenerateSessionToken(ctx, tmpl, SessionParams{
		InterviewID:    ref.ID,
		UserID:         claims.UserID,
		QuestionNumber: req.QuestionNumber,
		TTL:            req.TTL,
		Voice:          VoiceInterviewer,
	})
	return c.JSON(http.StatusOK, token.Response())
}

// loadTemplate is best effort; a missing template falls back to generic
// instructions rather than blocking the session.
func (h *Handler) loadTemplate(ctx context.Context, templateID string) *template.Template {
	if templateID == "" {
		return nil
	}
	tmpl, err := h.templates.GetByID(ctx, templateID)
	if err != nil {
		h.logger.Warn("failed to load template for instructions", "error", err, "template_id", templateID)
		return nil
	}
	return tmpl
}
