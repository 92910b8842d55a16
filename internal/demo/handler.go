package demo

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

const demoUserID = "demo-user"

// Handler serves the unauthenticated demo flow: a fixed catalog of three
// cases, Redis-tracked progress, and credential minting with the demo voice.
type Handler struct {
	progress    *ProgressStore
	credentials *credential.Service
	logger      *slog.Logger
}

func NewHandler(progress *ProgressStore, credentials *credential.Service, logger *slog.Logger) *Handler {
	return &Handler{
		progress:    progress,
		credentials: credentials,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/templates", h.ListTemplates)
	g.GET("/templates/:id", h.GetTemplate)
	g.GET("/interviews/:case_type", h.GetInterview)
	g.GET("/interviews/:case_type/questions/:n/token", h.QuestionToken)
	g.POST("/interviews/complete-question", h.CompleteQuestion)
	g.POST("/reset/:case_type", h.Reset)
	g.GET("/turn-credentials", h.TURNCredentials)
	g.GET("/direct-token/:case_type/:n", h.DirectToken)
}

// @Summary      List demo templates
// @Description  Returns the fixed demo case catalog without question material
// @Tags         demo
// @Produce      json
// @Success      200  {array}  dto.DemoTemplateResponse
// @Router       /demo/templates [get]
func (h *Handler) ListTemplates(c echo.Context) error {
	out := make([]dto.DemoTemplateResponse, 0, len(cases))
	for _, cs := range Cases() {
		out = append(out, toTemplateResponse(cs, false))
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Get a demo template
// @Description  Returns one demo case including its questions
// @Tags         demo
// @Produce      json
// @Param        id  path  string  true  "Demo template ID"
// @Success      200  {object}  dto.DemoTemplateResponse
// @Failure      404  {object}  shared.APIError
// @Router       /demo/templates/{id} [get]
func (h *Handler) GetTemplate(c echo.Context) error {
	cs, ok := CaseByTemplateID(c.Param("id"))
	if !ok {
		return shared.NotFound("demo_template_not_found", "Demo template not found")
	}
	return c.JSON(http.StatusOK, toTemplateResponse(cs, true))
}

// @Summary      Get a demo interview
// @Description  Returns a demo interview with its live progress; an untouched case reads as a fresh run
// @Tags         demo
// @Produce      json
// @Param        case_type  path  string  true  "Demo case type: market-entry, profitability or merger"
// @Success      200  {object}  dto.DemoInterviewResponse
// @Failure      404  {object}  shared.APIError
// @Router       /demo/interviews/{case_type} [get]
func (h *Handler) GetInterview(c echo.Context) error {
	cs, ok := CaseByType(c.Param("case_type"))
	if !ok {
		return demoNotFound()
	}

	progress, err := h.progress.Get(c.Request().Context(), cs.InterviewID)
	if err != nil {
		h.logger.Error("failed to read demo progress", "error", err, "interview_id", cs.InterviewID)
		return shared.InternalError("progress_failed", "failed to read demo progress")
	}

	return c.JSON(http.StatusOK, interviewResponse(cs, progress, ""))
}

// @Summary      Demo question token
// @Description  Mints a realtime session token for a demo question that is at or behind the current question
// @Tags         demo
// @Produce      json
// @Param        case_type  path   string  true   "Demo case type"
// @Param        n          path   int     true   "Question number (1-4)"
// @Param        ttl        query  int     false  "Token time-to-live in seconds"
// @Success      200  {object}  dto.SessionTokenResponse
// @Failure      400  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError  "Not in progress, or question is ahead of current"
// @Router       /demo/interviews/{case_type}/questions/{n}/token [get]
func (h *Handler) QuestionToken(c echo.Context) error {
	cs, ok := CaseByType(c.Param("case_type"))
	if !ok {
		return demoNotFound()
	}

	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 || n > 4 {
		return shared.BadRequest("invalid_question_number", "question number must be between 1 and 4")
	}

	progress, err := h.progress.Get(c.Request().Context(), cs.InterviewID)
	if err != nil {
		h.logger.Error("failed to read demo progress", "error", err, "interview_id", cs.InterviewID)
		return shared.InternalError("progress_failed", "failed to read demo progress")
	}
	if progress.Status != statusInProgress {
		return shared.Conflict("demo_not_in_progress", "Demo interview is not in progress")
	}
	if n > progress.CurrentQuestion {
		return shared.Conflict("future_question", "Cannot access future questions. Complete the current question first.")
	}

	ttl, _ := strconv.Atoi(c.QueryParam("ttl"))
	token := h.credentials.GenerateSessionToken(c.Request().Context(), cs.Template, credential.SessionParams{
		InterviewID:    cs.InterviewID,
		UserID:         demoUserID,
		QuestionNumber: n,
		TTL:            ttl,
		Voice:          credential.VoiceDemo,
		IDPrefix:       "demo_sess",
	})
	return c.JSON(http.StatusOK, token.Response())
}

// @Summary      Complete a demo question
// @Description  Marks the current question complete and advances; completing all four finishes the run
// @Tags         demo
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CompleteQuestionRequest  true  "Case type and question number"
// @Success      200  {object}  dto.DemoInterviewResponse
// @Failure      400  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError  "Not in progress, or not the current question"
// @Router       /demo/interviews/complete-question [post]
func (h *Handler) CompleteQuestion(c echo.Context) error {
	var req dto.CompleteQuestionRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	cs, ok := CaseByType(req.CaseType)
	if !ok {
		return demoNotFound()
	}

	ctx := c.Request().Context()
	progress, err := h.progress.Get(ctx, cs.InterviewID)
	if err != nil {
		h.logger.Error("failed to read demo progress", "error", err, "interview_id", cs.InterviewID)
		return shared.InternalError("progress_failed", "failed to read demo progress")
	}
	if progress.Status != statusInProgress {
		return shared.Conflict("demo_not_in_progress", "Demo interview is not in progress")
	}
	if req.QuestionNumber != progress.CurrentQuestion {
		return shared.Conflict("not_current_question", "Can only complete the current question")
	}

	if !progress.Completed(req.QuestionNumber) {
		progress.QuestionsCompleted = append(progress.QuestionsCompleted, req.QuestionNumber)
	}
	if next := req.QuestionNumber + 1; next <= 4 {
		progress.CurrentQuestion = next
	}
	if allQuestionsCompleted(progress.QuestionsCompleted) {
		progress.Status = statusCompleted
		completedAt := time.Now().UTC().Format(time.RFC3339)
		progress.CompletedAt = &completedAt
	}

	if err := h.progress.Save(ctx, cs.InterviewID, progress); err != nil {
		h.logger.Error("failed to save demo progress", "error", err, "interview_id", cs.InterviewID)
		return shared.InternalError("persist_failed", "failed to save demo progress")
	}

	return c.JSON(http.StatusOK, interviewResponse(cs, progress, ""))
}

// @Summary      Reset a demo interview
// @Description  Clears stored progress so the case starts over at question 1
// @Tags         demo
// @Produce      json
// @Param        case_type  path  string  true  "Demo case type to reset"
// @Success      200  {object}  dto.DemoInterviewResponse
// @Failure      404  {object}  shared.APIError
// @Router       /demo/reset/{case_type} [post]
func (h *Handler) Reset(c echo.Context) error {
	cs, ok := CaseByType(c.Param("case_type"))
	if !ok {
		return demoNotFound()
	}

	if err := h.progress.Reset(c.Request().Context(), cs.InterviewID); err != nil {
		h.logger.Error("failed to reset demo progress", "error", err, "interview_id", cs.InterviewID)
		return shared.InternalError("reset_failed", "failed to reset demo progress")
	}

	message := fmt.Sprintf("Demo interview %s has been reset", cs.CaseType)
	return c.JSON(http.StatusOK, interviewResponse(cs, h.progress.fresh(), message))
}

// @Summary      Demo TURN credentials
// @Description  Returns TURN relay credentials, degrading to public STUN servers when the vendor is unavailable
// @Tags         demo
// @Produce      json
// @Param        ttl  query  int  false  "Credential time-to-live in seconds"
// @Success      200  {object}  dto.TURNCredentialsResponse
// @Router       /demo/turn-credentials [get]
func (h *Handler) TURNCredentials(c echo.Context) error {
	ttl, _ := strconv.Atoi(c.QueryParam("ttl"))
	creds := h.credentials.GenerateTURNCredentials(c.Request().Context(), ttl)
	if creds.Fallback {
		h.logger.Info("issued fallback demo TURN credentials", "ttl", creds.TTL)
	}
	return c.JSON(http.StatusOK, creds.Response())
}

// @Summary      Direct demo token
// @Description  Mints a bare realtime token with maximum leniency: unknown case types map to market-entry and the question number is clamped
// @Tags         demo
// @Produce      json
// @Param        case_type  path   string  true   "Demo case type"
// @Param        n          path   int     true   "Question number"
// @Param        ttl        query  int     false  "Token time-to-live in seconds"
// @Success      200  {object}  dto.DirectTokenResponse
// @Router       /demo/direct-token/{case_type}/{n} [get]
func (h *Handler) DirectToken(c echo.Context) error {
	cs, ok := CaseByType(c.Param("case_type"))
	if !ok {
		h.logger.Warn("unknown demo case type, falling back to market-entry", "case_type", c.Param("case_type"))
		cs, _ = CaseByType(string(shared.CaseTypeMarketEntry))
	}

	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}

	ttl, _ := strconv.Atoi(c.QueryParam("ttl"))
	token := h.credentials.GenerateSessionToken(c.Request().Context(), cs.Template, credential.SessionParams{
		InterviewID:    cs.InterviewID,
		UserID:         demoUserID,
		QuestionNumber: n,
		TTL:            ttl,
		Voice:          credential.VoiceDemo,
		IDPrefix:       "demo_sess",
		SkipRing:       true,
	})
	return c.JSON(http.StatusOK, dto.DirectTokenResponse{
		Token:     token.Session.ClientSecret.Value,
		ExpiresAt: token.Session.ClientSecret.ExpiresAt,
	})
}

func demoNotFound() error {
	return shared.NotFound("demo_not_found", "Demo interview not found. Available options: market-entry, profitability, merger")
}

func allQuestionsCompleted(completed []int) bool {
	if len(completed) < 4 {
		return false
	}
	seen := make(map[int]bool, len(completed))
	for _, q := range completed {
		seen[q] = true
	}
	return seen[1] && seen[2] && seen[3] && seen[4]
}

func toTemplateResponse(cs Case, includeQuestions bool) dto.DemoTemplateResponse {
	t := cs.Template
	out := dto.DemoTemplateResponse{
		ID:               t.ID,
		CaseType:         cs.Label,
		LeadType:         t.LeadType,
		Difficulty:       t.Difficulty,
		Company:          t.Company,
		Industry:         t.Industry,
		Title:            t.Title,
		DescriptionShort: t.DescriptionShort,
		DescriptionLong:  t.DescriptionLong,
		ImageURL:         t.ImageURL,
		Duration:         t.Duration,
	}
	if includeQuestions {
		for _, q := range t.Questions() {
			out.Questions = append(out.Questions, dto.DemoQuestion{
				Number: q.Number,
				Title:  q.Title,
				Prompt: q.Prompt,
			})
		}
	}
	return out
}

func interviewResponse(cs Case, p Progress, message string) dto.DemoInterviewResponse {
	tmpl := toTemplateResponse(cs, true)
	return dto.DemoInterviewResponse{
		ID:         cs.InterviewID,
		TemplateID: cs.Template.ID,
		Status:     p.Status,
		ProgressData: dto.DemoProgress{
			CurrentQuestion:    p.CurrentQuestion,
			QuestionsCompleted: p.QuestionsCompleted,
			Status:             p.Status,
			StartedAt:          p.StartedAt,
			CompletedAt:        p.CompletedAt,
		},
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		Template:    &tmpl,
		Message:     message,
	}
}
