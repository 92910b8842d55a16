package interview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
	"github.com/labstack/echo/v4"
)

// RefSource adapts the store to the credential package's interview lookup.
type RefSource struct {
	store *Store
}

func NewRefSource(store *Store) *RefSource {
	return &RefSource{store: store}
}

func (r *RefSource) Find(ctx context.Context, id string) (*credential.InterviewRef, error) {
	iv, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &credential.InterviewRef{
		ID:         iv.ID,
		UserID:     iv.UserID,
		TemplateID: iv.TemplateID,
		Status:     iv.Status,
	}, nil
}

type Handler struct {
	store       *Store
	templates   *template.Store
	credentials *credential.Service
	logger      *slog.Logger
}

func NewHandler(store *Store, templates *template.Store, credentials *credential.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:       store,
		templates:   templates,
		credentials: credentials,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.POST("/:id/credentials", h.Credentials)
	g.POST("/:id/questions/:n/token", h.QuestionToken)
}

// @Summary      List interviews
// @Description  Returns the authenticated user's interviews, newest first
// @Tags         interviews
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Param        skip    query  int     false  "Rows to skip"
// @Param        limit   query  int     false  "Max rows"
// @Success      200  {object}  dto.InterviewListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError  "No active subscription"
// @Security     BearerAuth
// @Router       /interviews [get]
func (h *Handler) List(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	status := c.QueryParam("status")
	if status != "" && !validStatus(status) {
		return shared.BadRequest("invalid_status", "unknown interview status")
	}
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	interviews, total, err := h.store.ListByUserID(c.Request().Context(), claims.UserID, status, skip, limit)
	if err != nil {
		h.logger.Error("failed to list interviews", "error", err, "user_id", claims.UserID)
		return shared.InternalError("list_failed", "failed to list interviews")
	}

	out := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		out = append(out, toResponse(&interviews[i]))
	}
	if limit <= 0 {
		limit = 100
	}
	return c.JSON(http.StatusOK, dto.InterviewListResponse{
		Interviews: out,
		Total:      int(total),
		Skip:       skip,
		Limit:      limit,
	})
}

// @Summary      Start an interview
// @Description  Creates an in-progress interview against a case template
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateInterviewRequest  true  "Template to run"
// @Success      201  {object}  dto.InterviewResponse
// @Failure      400  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError  "No active subscription"
// @Failure      404  {object}  shared.APIError  "Template not found"
// @Security     BearerAuth
// @Router       /interviews [post]
func (h *Handler) Create(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	var req dto.CreateInterviewRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.TemplateID == "" {
		return shared.BadRequest("missing_template_id", "template_id is required")
	}

	ctx := c.Request().Context()
	if _, err := h.templates.GetByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("template_not_found", "template not found")
		}
		h.logger.Error("failed to look up template", "error", err, "template_id", req.TemplateID)
		return shared.InternalError("lookup_failed", "failed to look up template")
	}

	now := time.Now()
	iv := &Interview{
		UserID:       claims.UserID,
		TemplateID:   req.TemplateID,
		Status:       StatusInProgress,
		ProgressData: DefaultProgress(),
		StartedAt:    &now,
	}
	if err := h.store.Create(ctx, iv); err != nil {
		h.logger.Error("failed to create interview", "error", err, "user_id", claims.UserID)
		return shared.InternalError("create_failed", "failed to create interview")
	}

	return c.JSON(http.StatusCreated, toResponse(iv))
}

// @Summary      Get an interview
// @Tags         interviews
// @Produce      json
// @Param        id  path  string  true  "Interview ID"
// @Success      200  {object}  dto.InterviewResponse
// @Failure      403  {object}  shared.APIError  "Interview belongs to another user"
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /interviews/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	iv, herr := h.ownedInterview(c)
	if herr != nil {
		return herr
	}
	return c.JSON(http.StatusOK, toResponse(iv))
}

// @Summary      Update an interview
// @Description  Patches status, progress data or completion time; completing an interview stamps completed_at once
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Interview ID"
// @Param        request  body  dto.UpdateInterviewRequest  true  "Fields to change"
// @Success      200  {object}  dto.InterviewResponse
// @Failure      400  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError  "Interview belongs to another user"
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /interviews/{id} [patch]
func (h *Handler) Update(c echo.Context) error {
	iv, herr := h.ownedInterview(c)
	if herr != nil {
		return herr
	}

	var req dto.UpdateInterviewRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	if req.Status != nil {
		if !validStatus(*req.Status) {
			return shared.BadRequest("invalid_status", "unknown interview status")
		}
		iv.Status = *req.Status
		if iv.Status == StatusCompleted && iv.CompletedAt == nil {
			now := time.Now()
			iv.CompletedAt = &now
		}
	}
	if req.ProgressData != nil {
		iv.ProgressData = shared.JSONMap(req.ProgressData)
	}
	if req.CompletedAt != nil {
		iv.CompletedAt = req.CompletedAt
	}

	if err := h.store.Update(c.Request().Context(), iv); err != nil {
		h.logger.Error("failed to update interview", "error", err, "interview_id", iv.ID)
		return shared.InternalError("update_failed", "failed to update interview")
	}
	return c.JSON(http.StatusOK, toResponse(iv))
}

// @Summary      Issue interview credentials
// @Description  Returns TURN credentials and an OpenAI Realtime session for the interview's current question
// @Tags         interviews
// @Produce      json
// @Param        id  path  string  true  "Interview ID"
// @Success      200  {object}  dto.InterviewCredentialsResponse
// @Failure      403  {object}  shared.APIError  "Interview belongs to another user"
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError  "Interview is not in progress"
// @Security     BearerAuth
// @Router       /interviews/{id}/credentials [post]
func (h *Handler) Credentials(c echo.Context) error {
	iv, herr := h.ownedInterview(c)
	if herr != nil {
		return herr
	}
	if iv.Status != StatusInProgress {
		return shared.Conflict("interview_not_in_progress", "interview is not in progress")
	}

	ctx := c.Request().Context()
	turn := h.credentials.GenerateTURNCredentials(ctx, 0)
	token := h.credentials.GenerateSessionToken(ctx, h.loadTemplate(ctx, iv.TemplateID), credential.SessionParams{
		InterviewID:    iv.ID,
		UserID:         iv.UserID,
		QuestionNumber: currentQuestion(iv),
		Voice:          credential.VoiceInterviewer,
	})

	return c.JSON(http.StatusOK, dto.InterviewCredentialsResponse{
		TURNCredentials: turn.Response(),
		SessionToken:    token.Response(),
	})
}

// @Summary      Mint a question token
// @Description  Issues an OpenAI Realtime session scoped to one question of the interview
// @Tags         interviews
// @Produce      json
// @Param        id   path   string  true   "Interview ID"
// @Param        n    path   int     true   "Question number (1-4)"
// @Param        ttl  query  int     false  "Token lifetime in seconds (clamped to 300..7200)"
// @Success      200  {object}  dto.SessionTokenResponse
// @Failure      400  {object}  shared.APIError  "Question number out of range"
// @Failure      403  {object}  shared.APIError  "Interview belongs to another user"
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /interviews/{id}/questions/{n}/token [post]
func (h *Handler) QuestionToken(c echo.Context) error {
	iv, herr := h.ownedInterview(c)
	if herr != nil {
		return herr
	}

	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 || n > 4 {
		return shared.BadRequest("invalid_question_number", "question number must be between 1 and 4")
	}
	ttl, _ := strconv.Atoi(c.QueryParam("ttl"))

	ctx := c.Request().Context()
	token := h.credentials.GenerateSessionToken(ctx, h.loadTemplate(ctx, iv.TemplateID), credential.SessionParams{
		InterviewID:    iv.ID,
		UserID:         iv.UserID,
		QuestionNumber: n,
		TTL:            ttl,
		Voice:          credential.VoiceInterviewer,
	})
	return c.JSON(http.StatusOK, token.Response())
}

// ownedInterview loads the path interview and enforces ownership.
func (h *Handler) ownedInterview(c echo.Context) (*Interview, *echo.HTTPError) {
	claims := auth.GetClaims(c)
	if claims == nil {
		return nil, shared.Unauthorized("auth_required", "authentication required")
	}

	iv, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("interview_not_found", "interview not found")
		}
		h.logger.Error("failed to look up interview", "error", err, "interview_id", c.Param("id"))
		return nil, shared.InternalError("lookup_failed", "failed to look up interview")
	}
	if iv.UserID != claims.UserID {
		h.logger.Warn("interview access denied for non-owner", "interview_id", iv.ID, "user_id", claims.UserID)
		return nil, shared.Forbidden("not_interview_owner", "not authorized to access this interview")
	}
	return iv, nil
}

func (h *Handler) loadTemplate(ctx context.Context, templateID string) *template.Template {
	tmpl, err := h.templates.GetByID(ctx, templateID)
	if err != nil {
		h.logger.Warn("failed to load template for instructions", "error", err, "template_id", templateID)
		return nil
	}
	return tmpl
}

// currentQuestion reads the next question out of the progress document,
// clamped to the 1..4 window.
func currentQuestion(iv *Interview) int {
	n, ok := iv.ProgressData.Int("current_question")
	if !ok || n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

func toResponse(iv *Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:           iv.ID,
		UserID:       iv.UserID,
		TemplateID:   iv.TemplateID,
		Status:       iv.Status,
		ProgressData: iv.ProgressData,
		StartedAt:    iv.StartedAt,
		CompletedAt:  iv.CompletedAt,
		CreatedAt:    iv.CreatedAt,
		UpdatedAt:    iv.UpdatedAt,
	}
}
