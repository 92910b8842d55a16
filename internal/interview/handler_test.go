package interview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) (*Handler, *Store, *template.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate interviews: %v", err)
	}
	templates := template.NewStore(db, nil)
	if err := templates.Migrate(); err != nil {
		t.Fatalf("failed to migrate templates: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// No vendors configured: credential calls exercise the fallback rungs.
	creds := credential.NewService(credential.NewKeyRing(nil, nil), nil, nil, logger)
	return NewHandler(store, templates, creds, logger), store, templates
}

func seedTemplate(t *testing.T, templates *template.Store) *template.Template {
	t.Helper()
	tmpl := &template.Template{
		CaseType:        "Market Entry",
		LeadType:        "Interviewer-led",
		Difficulty:      "Medium",
		Company:         "Premier Oil",
		Industry:        "Oil & Gas",
		Prompt:          "Assess the market entry.",
		Title:           "Premier Oil Market Entry",
		DescriptionLong: "Premier Oil is evaluating entry into offshore wind.",
		Structure: shared.JSONMap{
			"question1": map[string]any{"title": "Sizing", "prompt": "Size the market."},
			"question2": map[string]any{"title": "Economics", "prompt": "Assess unit economics."},
		},
	}
	if err := templates.Create(context.Background(), tmpl); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return tmpl
}

func ivRequest(e *echo.Echo, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		auth.SetClaimsForTest(c, &auth.Claims{UserID: userID, Email: userID + "@example.com", Name: "Test User"})
	}
	return c, rec
}

func TestHandler_Create(t *testing.T) {
	h, _, templates := newTestHandler(t)
	tmpl := seedTemplate(t, templates)
	e := echo.New()

	c, rec := ivRequest(e, http.MethodPost, "/interviews", `{"template_id":"`+tmpl.ID+`"}`, "user_1")
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.InterviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusInProgress {
		t.Errorf("expected in-progress status, got %s", resp.Status)
	}
	if resp.StartedAt == nil {
		t.Error("expected started_at to be set")
	}
	if got, ok := resp.ProgressData["current_question"].(float64); !ok || got != 1 {
		t.Errorf("expected current_question 1, got %v", resp.ProgressData["current_question"])
	}
}

func TestHandler_Create_UnknownTemplate(t *testing.T) {
	h, _, _ := newTestHandler(t)
	e := echo.New()

	c, _ := ivRequest(e, http.MethodPost, "/interviews", `{"template_id":"tpl_missing"}`, "user_1")
	err := h.Create(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_Create_MissingTemplateID(t *testing.T) {
	h, _, _ := newTestHandler(t)
	e := echo.New()

	c, _ := ivRequest(e, http.MethodPost, "/interviews", `{}`, "user_1")
	err := h.Create(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_List(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx := context.Background()
	e := echo.New()

	for _, status := range []string{StatusInProgress, StatusCompleted} {
		if err := store.Create(ctx, &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: status}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := store.Create(ctx, &Interview{UserID: "user_2", TemplateID: "tpl_1", Status: StatusInProgress}); err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	c, rec := ivRequest(e, http.MethodGet, "/interviews?status=completed", "", "user_1")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.InterviewListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Interviews) != 1 {
		t.Fatalf("expected one completed interview, got %+v", resp)
	}
	if resp.Interviews[0].Status != StatusCompleted {
		t.Errorf("expected completed interview, got %s", resp.Interviews[0].Status)
	}
}

func TestHandler_List_InvalidStatus(t *testing.T) {
	h, _, _ := newTestHandler(t)
	e := echo.New()

	c, _ := ivRequest(e, http.MethodGet, "/interviews?status=bogus", "", "user_1")
	err := h.List(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_Get_Ownership(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name     string
		id       string
		userID   string
		wantCode int
	}{
		{"owner reads", iv.ID, "user_1", 0},
		{"unauthenticated", iv.ID, "", http.StatusUnauthorized},
		{"non-owner forbidden", iv.ID, "user_2", http.StatusForbidden},
		{"unknown interview", "int_missing", "user_1", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := ivRequest(e, http.MethodGet, "/interviews/"+tt.id, "", tt.userID)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.Get(c)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if rec.Code != http.StatusOK {
					t.Errorf("expected 200, got %d", rec.Code)
				}
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != tt.wantCode {
				t.Fatalf("expected %d, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestHandler_Update_CompletionStampsOnce(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, rec := ivRequest(e, http.MethodPatch, "/interviews/"+iv.ID, `{"status":"completed"}`, "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.InterviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusCompleted || resp.CompletedAt == nil {
		t.Fatalf("expected completion stamp, got %+v", resp)
	}
	first := *resp.CompletedAt

	// Completing again keeps the original stamp.
	c, rec = ivRequest(e, http.MethodPatch, "/interviews/"+iv.ID, `{"status":"completed"}`, "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CompletedAt == nil || !resp.CompletedAt.Equal(first) {
		t.Errorf("expected completed_at %v to be preserved, got %v", first, resp.CompletedAt)
	}
}

func TestHandler_Update_ProgressData(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"progress_data":{"current_question":3,"questions_completed":[1,2]}}`
	c, rec := ivRequest(e, http.MethodPatch, "/interviews/"+iv.ID, body, "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	loaded, err := store.GetByID(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n, ok := loaded.ProgressData.Int("current_question"); !ok || n != 3 {
		t.Errorf("expected current_question 3, got %v", loaded.ProgressData["current_question"])
	}
	if got, ok := loaded.ProgressData.IntSlice("questions_completed"); !ok || len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected questions_completed [1 2], got %v", got)
	}
}

func TestHandler_Update_InvalidStatus(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, _ := ivRequest(e, http.MethodPatch, "/interviews/"+iv.ID, `{"status":"paused"}`, "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	err := h.Update(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_Credentials(t *testing.T) {
	h, store, templates := newTestHandler(t)
	tmpl := seedTemplate(t, templates)
	e := echo.New()

	iv := &Interview{
		UserID:       "user_1",
		TemplateID:   tmpl.ID,
		Status:       StatusInProgress,
		ProgressData: shared.JSONMap{"current_question": 2, "questions_completed": []any{1}},
	}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, rec := ivRequest(e, http.MethodPost, "/interviews/"+iv.ID+"/credentials", "", "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	if err := h.Credentials(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.InterviewCredentialsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.TURNCredentials.ICEServers) == 0 {
		t.Error("expected usable ice servers")
	}
	if resp.SessionToken.QuestionNumber != 2 {
		t.Errorf("expected current question 2, got %d", resp.SessionToken.QuestionNumber)
	}
	if resp.SessionToken.ID != "sess_"+iv.ID+"_2" {
		t.Errorf("unexpected session token id %s", resp.SessionToken.ID)
	}
	if !strings.Contains(resp.SessionToken.Instructions, "Premier Oil") {
		t.Errorf("expected case instructions, got %q", resp.SessionToken.Instructions)
	}
}

func TestHandler_Credentials_NotInProgress(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusCompleted}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, _ := ivRequest(e, http.MethodPost, "/interviews/"+iv.ID+"/credentials", "", "user_1")
	c.SetParamNames("id")
	c.SetParamValues(iv.ID)
	err := h.Credentials(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestHandler_QuestionToken(t *testing.T) {
	h, store, templates := newTestHandler(t)
	tmpl := seedTemplate(t, templates)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: tmpl.ID, Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, rec := ivRequest(e, http.MethodPost, "/interviews/"+iv.ID+"/questions/2/token?ttl=600", "", "user_1")
	c.SetParamNames("id", "n")
	c.SetParamValues(iv.ID, "2")
	if err := h.QuestionToken(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dto.SessionTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.QuestionNumber != 2 || resp.TTL != 600 {
		t.Errorf("unexpected token %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.ExpiresAt); err != nil {
		t.Errorf("expiresAt not RFC3339: %v", err)
	}
}

func TestHandler_QuestionToken_OutOfRange(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(context.Background(), iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, n := range []string{"0", "5", "abc"} {
		c, _ := ivRequest(e, http.MethodPost, "/interviews/"+iv.ID+"/questions/"+n+"/token", "", "user_1")
		c.SetParamNames("id", "n")
		c.SetParamValues(iv.ID, n)

		err := h.QuestionToken(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("question %s: expected 400, got %v", n, err)
		}
	}
}

func TestRefSource_Find(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	iv := &Interview{UserID: "user_1", TemplateID: "tpl_1", Status: StatusInProgress}
	if err := store.Create(ctx, iv); err != nil {
		t.Fatalf("seed: %v", err)
	}

	src := NewRefSource(store)
	ref, err := src.Find(ctx, iv.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ref.ID != iv.ID || ref.UserID != "user_1" || ref.TemplateID != "tpl_1" || ref.Status != StatusInProgress {
		t.Errorf("unexpected ref %+v", ref)
	}

	if _, err := src.Find(ctx, "int_missing"); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
