package template

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store      *Store
	embeddings EmbeddingService
	logger     *slog.Logger
}

func NewHandler(store *Store, embeddings EmbeddingService, logger *slog.Logger) *Handler {
	return &Handler{
		store:      store,
		embeddings: embeddings,
		logger:     logger,
	}
}

// RegisterRoutes mounts the read endpoints; the group is expected to carry
// auth and subscription middleware.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/:id", h.Get)
}

// RegisterAdminRoutes mounts the mutating endpoints on an admin-only group.
func (h *Handler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// @Summary      List templates
// @Description  Returns case templates, optionally filtered by attributes
// @Tags         templates
// @Produce      json
// @Param        skip        query  int     false  "Rows to skip"
// @Param        limit       query  int     false  "Max rows (default 100)"
// @Param        case_type   query  string  false  "Filter by case type"
// @Param        lead_type   query  string  false  "Filter by lead type"
// @Param        difficulty  query  string  false  "Filter by difficulty"
// @Param        company     query  string  false  "Filter by company"
// @Param        industry    query  string  false  "Filter by industry"
// @Success      200  {array}  dto.TemplateListItem
// @Failure      401  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /templates [get]
func (h *Handler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filters := Filters{
		CaseType:   c.QueryParam("case_type"),
		LeadType:   c.QueryParam("lead_type"),
		Difficulty: c.QueryParam("difficulty"),
		Company:    c.QueryParam("company"),
		Industry:   c.QueryParam("industry"),
	}

	templates, err := h.store.List(c.Request().Context(), filters, skip, limit)
	if err != nil {
		h.logger.Error("failed to list templates", "error", err)
		return shared.InternalError("list_failed", "failed to list templates")
	}

	out := make([]dto.TemplateListItem, 0, len(templates))
	for i := range templates {
		out = append(out, toListItem(&templates[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Get a template
// @Description  Returns a single template including its prompt and question structure
// @Tags         templates
// @Produce      json
// @Param        id  path  string  true  "Template ID"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /templates/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	t, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("template_not_found", "template not found")
		}
		h.logger.Error("failed to get template", "error", err, "template_id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get template")
	}
	return c.JSON(http.StatusOK, toResponse(t))
}

// @Summary      Search templates
// @Description  Semantic search over templates using embeddings
// @Tags         templates
// @Produce      json
// @Param        q      query  string  true   "Search query"
// @Param        limit  query  int     false  "Number of results (default 10, max 50)"
// @Success      200  {object}  dto.TemplateSearchResponse
// @Failure      400  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Search not configured"
// @Security     BearerAuth
// @Router       /templates/search [get]
func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return shared.BadRequest("missing_query", "search query is required")
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 && l <= 50 {
			limit = l
		}
	}

	if h.embeddings == nil {
		return shared.ServiceUnavailable("search_unavailable", "search is not available")
	}

	embedding, err := h.embeddings.Generate(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("failed to embed search query", "error", err)
		return shared.BadGateway("search_failed", "failed to generate search embedding")
	}

	templates, err := h.store.SearchByEmbedding(c.Request().Context(), embedding, limit)
	if err != nil {
		h.logger.Error("failed to search templates", "error", err)
		return shared.InternalError("search_failed", "failed to search templates")
	}

	out := make([]dto.TemplateListItem, 0, len(templates))
	for i := range templates {
		out = append(out, toListItem(&templates[i]))
	}
	return c.JSON(http.StatusOK, dto.TemplateSearchResponse{
		Query:     query,
		Templates: out,
	})
}

// @Summary      Create a template
// @Description  Creates a new case template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateTemplateRequest  true  "Template definition"
// @Success      201  {object}  dto.TemplateResponse
// @Failure      400  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError  "Admin access required"
// @Security     BearerAuth
// @Router       /templates [post]
func (h *Handler) Create(c echo.Context) error {
	var req dto.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	if req.CaseType == "" || req.LeadType == "" || req.Difficulty == "" {
		return shared.BadRequest("missing_fields", "case_type, lead_type and difficulty are required")
	}
	if req.Prompt == "" {
		return shared.BadRequest("missing_prompt", "prompt is required")
	}
	if len(req.Structure) == 0 {
		return shared.BadRequest("missing_structure", "structure is required")
	}

	t := &Template{
		CaseType:         req.CaseType,
		LeadType:         req.LeadType,
		Difficulty:       req.Difficulty,
		Company:          req.Company,
		Industry:         req.Industry,
		Prompt:           req.Prompt,
		Structure:        shared.JSONMap(req.Structure),
		ImageURL:         req.ImageURL,
		Title:            req.Title,
		DescriptionShort: req.DescriptionShort,
		DescriptionLong:  req.DescriptionLong,
		Duration:         req.Duration,
		Version:          req.Version,
	}

	if err := h.store.Create(c.Request().Context(), t); err != nil {
		h.logger.Error("failed to create template", "error", err)
		return shared.InternalError("create_failed", "failed to create template")
	}

	if h.embeddings != nil {
		go h.updateEmbedding(t)
	}

	return c.JSON(http.StatusCreated, toResponse(t))
}

// @Summary      Update a template
// @Description  Applies a partial update to a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Template ID"
// @Param        request  body  dto.UpdateTemplateRequest  true  "Fields to change"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /templates/{id} [put]
func (h *Handler) Update(c echo.Context) error {
	t, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("template_not_found", "template not found")
		}
		h.logger.Error("failed to get template", "error", err, "template_id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get template")
	}

	var req dto.UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	if req.CaseType != nil {
		t.CaseType = *req.CaseType
	}
	if req.LeadType != nil {
		t.LeadType = *req.LeadType
	}
	if req.Difficulty != nil {
		t.Difficulty = *req.Difficulty
	}
	if req.Company != nil {
		t.Company = *req.Company
	}
	if req.Industry != nil {
		t.Industry = *req.Industry
	}
	if req.Prompt != nil {
		t.Prompt = *req.Prompt
	}
	if req.Structure != nil {
		t.Structure = shared.JSONMap(req.Structure)
	}
	if req.ImageURL != nil {
		t.ImageURL = *req.ImageURL
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.DescriptionShort != nil {
		t.DescriptionShort = *req.DescriptionShort
	}
	if req.DescriptionLong != nil {
		t.DescriptionLong = *req.DescriptionLong
	}
	if req.Duration != nil {
		t.Duration = *req.Duration
	}
	if req.Version != nil {
		t.Version = *req.Version
	}

	if err := h.store.Update(c.Request().Context(), t); err != nil {
		h.logger.Error("failed to update template", "error", err, "template_id", t.ID)
		return shared.InternalError("update_failed", "failed to update template")
	}

	if h.embeddings != nil {
		go h.updateEmbedding(t)
	}

	return c.JSON(http.StatusOK, toResponse(t))
}

// @Summary      Delete a template
// @Description  Removes a template; existing interviews keep their template reference
// @Tags         templates
// @Param        id  path  string  true  "Template ID"
// @Success      204
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /templates/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	templateID := c.Param("id")
	if err := h.store.Delete(c.Request().Context(), templateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("template_not_found", "template not found")
		}
		h.logger.Error("failed to delete template", "error", err, "template_id", templateID)
		return shared.InternalError("delete_failed", "failed to delete template")
	}

	if h.embeddings != nil {
		go h.store.DeleteEmbedding(context.Background(), templateID)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) updateEmbedding(t *Template) {
	ctx := context.Background()
	text := strings.Join([]string{t.Title, t.CaseType, t.Company, t.Industry, t.DescriptionShort, t.DescriptionLong}, " ")
	embedding, err := h.embeddings.Generate(ctx, text)
	if err != nil {
		h.logger.Warn("failed to embed template", "error", err, "template_id", t.ID)
		return
	}
	if err := h.store.UpsertEmbedding(ctx, t.ID, embedding); err != nil {
		h.logger.Warn("failed to store template embedding", "error", err, "template_id", t.ID)
	}
}

func toResponse(t *Template) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:               t.ID,
		CaseType:         t.CaseType,
		LeadType:         t.LeadType,
		Difficulty:       t.Difficulty,
		Company:          t.Company,
		Industry:         t.Industry,
		Prompt:           t.Prompt,
		Structure:        t.Structure,
		ImageURL:         t.ImageURL,
		Title:            t.Title,
		DescriptionShort: t.DescriptionShort,
		DescriptionLong:  t.DescriptionLong,
		Duration:         t.Duration,
		Version:          t.Version,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toListItem(t *Template) dto.TemplateListItem {
	return dto.TemplateListItem{
		ID:               t.ID,
		CaseType:         t.CaseType,
		LeadType:         t.LeadType,
		Difficulty:       t.Difficulty,
		Company:          t.Company,
		Industry:         t.Industry,
		ImageURL:         t.ImageURL,
		Title:            t.Title,
		DescriptionShort: t.DescriptionShort,
		Duration:         t.Duration,
		Version:          t.Version,
	}
}
