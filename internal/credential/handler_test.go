package credential

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
	"github.com/labstack/echo/v4"
)

type stubInterviews struct {
	refs map[string]*InterviewRef
	err  error
}

func (s *stubInterviews) Find(ctx context.Context, id string) (*InterviewRef, error) {
	if s.err != nil {
		return nil, s.err
	}
	ref, ok := s.refs[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return ref, nil
}

type stubTemplates struct {
	tmpl *template.Template
}

func (s *stubTemplates) GetByID(ctx context.Context, id string) (*template.Template, error) {
	if s.tmpl == nil {
		return nil, shared.ErrNotFound
	}
	return s.tmpl, nil
}

func newTestCredHandler(interviews InterviewSource, templates TemplateSource) *Handler {
	// No vendors configured: minting always takes the local fallback, which
	// is exactly what the endpoint contract requires anyway.
	svc := NewService(NewKeyRing(nil, nil), nil, nil, discardLogger())
	return NewHandler(svc, interviews, templates, discardLogger())
}

func credRequest(e *echo.Echo, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestCredHandler_RegisterRoutes(t *testing.T) {
	h := newTestCredHandler(&stubInterviews{}, &stubTemplates{})
	e := echo.New()
	h.RegisterRoutes(e.Group("/webrtc"))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /webrtc/turn-credentials",
		"POST /webrtc/openai-ephemeral-key",
	} {
		if !registered[want] {
			t.Errorf("expected route %s to be registered", want)
		}
	}
}

func TestCredHandler_TURNCredentials(t *testing.T) {
	h := newTestCredHandler(&stubInterviews{}, &stubTemplates{})
	e := echo.New()

	c, rec := credRequest(e, http.MethodGet, "/webrtc/turn-credentials?ttl=600", "", "user_1")
	if err := h.TURNCredentials(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.WebRTCTURNResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TTL != 600 {
		t.Errorf("expected ttl 600, got %d", resp.TTL)
	}
	if len(resp.ICEServers) == 0 || len(resp.ICEServers[0].URLs) == 0 {
		t.Errorf("expected usable ice servers, got %+v", resp.ICEServers)
	}
}

func TestCredHandler_TURNCredentials_Unauthorized(t *testing.T) {
	h := newTestCredHandler(&stubInterviews{}, &stubTemplates{})
	e := echo.New()

	c, _ := credRequest(e, http.MethodGet, "/webrtc/turn-credentials", "", "")
	err := h.TURNCredentials(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCredHandler_EphemeralKey(t *testing.T) {
	interviews := &stubInterviews{refs: map[string]*InterviewRef{
		"int_1": {ID: "int_1", UserID: "user_1", TemplateID: "tpl_1", Status: "in-progress"},
	}}
	h := newTestCredHandler(interviews, &stubTemplates{tmpl: testCaseTemplate()})
	e := echo.New()

	c, rec := credRequest(e, http.MethodPost, "/webrtc/openai-ephemeral-key",
		`{"interview_id":"int_1","question_number":1,"ttl":900}`, "user_1")
	if err := h.EphemeralKey(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SessionTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "sess_int_1_1" {
		t.Errorf("expected token id sess_int_1_1, got %s", resp.ID)
	}
	if resp.UserID != "user_1" || resp.QuestionNumber != 1 || resp.TTL != 900 {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if !strings.Contains(resp.Instructions, "Premier Oil") {
		t.Errorf("expected case instructions, got %q", resp.Instructions)
	}
	if resp.RealtimeSession.ClientSecret.Value == "" {
		t.Error("expected a usable client secret even in fallback mode")
	}
	if !resp.RealtimeSession.Fallback {
		t.Error("expected fallback session without vendor keys")
	}
}

func TestCredHandler_EphemeralKey_Errors(t *testing.T) {
	interviews := &stubInterviews{refs: map[string]*InterviewRef{
		"int_1": {ID: "int_1", UserID: "user_1", TemplateID: "tpl_1"},
	}}
	h := newTestCredHandler(interviews, &stubTemplates{})
	e := echo.New()

	tests := []struct {
		name     string
		body     string
		userID   string
		wantCode int
	}{
		{"unauthenticated", `{"interview_id":"int_1","question_number":1}`, "", http.StatusUnauthorized},
		{"missing interview id", `{"question_number":1}`, "user_1", http.StatusBadRequest},
		{"unknown interview", `{"interview_id":"int_404","question_number":1}`, "user_1", http.StatusNotFound},
		{"non-owner", `{"interview_id":"int_1","question_number":1}`, "user_2", http.StatusForbidden},
		{"question too low", `{"interview_id":"int_1","question_number":0}`, "user_1", http.StatusBadRequest},
		{"question too high", `{"interview_id":"int_1","question_number":5}`, "user_1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := credRequest(e, http.MethodPost, "/webrtc/openai-ephemeral-key", tt.body, tt.userID)
			err := h.EphemeralKey(c)

			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected http error, got %v", err)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, httpErr.Code)
			}
		})
	}
}

func TestCredHandler_EphemeralKey_TemplateMissing(t *testing.T) {
	interviews := &stubInterviews{refs: map[string]*InterviewRef{
		"int_1": {ID: "int_1", UserID: "user_1", TemplateID: "tpl_gone"},
	}}
	h := newTestCredHandler(interviews, &stubTemplates{})
	e := echo.New()

	c, rec := credRequest(e, http.MethodPost, "/webrtc/openai-ephemeral-key",
		`{"interview_id":"int_1","question_number":2}`, "user_1")
	if err := h.EphemeralKey(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite missing template, got %d", rec.Code)
	}

	var resp dto.SessionTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Instructions, "interview question 2") {
		t.Errorf("expected generic instructions, got %q", resp.Instructions)
	}
}
