package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/labstack/echo/v4"
)

type stubChecker struct {
	usable bool
	err    error
	calls  int
}

func (s *stubChecker) HasUsable(ctx context.Context, userID string, now time.Time) (bool, error) {
	s.calls++
	return s.usable, s.err
}

func analysisRequest(body string, claims *auth.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		auth.SetClaimsForTest(c, claims)
	}
	return c, rec
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(&stubChat{}, discardLogger()), &stubChecker{}, discardLogger())
	h.RegisterRoutes(e.Group("/analysis"))

	found := false
	for _, r := range e.Routes() {
		if r.Method == http.MethodPost && r.Path == "/analysis" {
			found = true
		}
	}
	if !found {
		t.Error("POST /analysis not registered")
	}
}

func TestAnalyzeHandler(t *testing.T) {
	chat := &stubChat{response: []byte(fullFeedback)}
	checker := &stubChecker{usable: true}
	h := NewHandler(NewService(chat, discardLogger()), checker, discardLogger())

	c, rec := analysisRequest(`{"transcript": "Interviewer: walk me through your framework."}`,
		&auth.Claims{UserID: "user_1"})
	if err := h.Analyze(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if checker.calls != 1 {
		t.Errorf("expected one subscription check, got %d", checker.calls)
	}

	var resp dto.AnalyzeTranscriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Feedback.Structure.Title != "Clear framework" {
		t.Errorf("unexpected structure title: %s", resp.Feedback.Structure.Title)
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("expected generated_at to be set")
	}
}

func TestAnalyzeHandlerAdminBypassesGate(t *testing.T) {
	chat := &stubChat{response: []byte(fullFeedback)}
	checker := &stubChecker{usable: false}
	h := NewHandler(NewService(chat, discardLogger()), checker, discardLogger())

	c, rec := analysisRequest(`{"transcript": "some transcript"}`,
		&auth.Claims{UserID: "user_admin", IsAdmin: true})
	if err := h.Analyze(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin without subscription, got %d", rec.Code)
	}
	if checker.calls != 0 {
		t.Errorf("expected no subscription check for admin, got %d", checker.calls)
	}
}

func TestAnalyzeHandlerErrors(t *testing.T) {
	tests := []struct {
		name     string
		chat     *stubChat
		checker  *stubChecker
		body     string
		claims   *auth.Claims
		wantCode int
	}{
		{
			name:     "unauthenticated",
			chat:     &stubChat{response: []byte(fullFeedback)},
			checker:  &stubChecker{usable: true},
			body:     `{"transcript": "t"}`,
			claims:   nil,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing transcript",
			chat:     &stubChat{response: []byte(fullFeedback)},
			checker:  &stubChecker{usable: true},
			body:     `{"transcript": "   "}`,
			claims:   &auth.Claims{UserID: "user_1"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no subscription",
			chat:     &stubChat{response: []byte(fullFeedback)},
			checker:  &stubChecker{usable: false},
			body:     `{"transcript": "t"}`,
			claims:   &auth.Claims{UserID: "user_1"},
			wantCode: http.StatusPaymentRequired,
		},
		{
			name:     "subscription check fails",
			chat:     &stubChat{response: []byte(fullFeedback)},
			checker:  &stubChecker{err: errors.New("db down")},
			body:     `{"transcript": "t"}`,
			claims:   &auth.Claims{UserID: "user_1"},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "not configured",
			chat:     &stubChat{err: credential.ErrNoKeys},
			checker:  &stubChecker{usable: true},
			body:     `{"transcript": "t"}`,
			claims:   &auth.Claims{UserID: "user_1"},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "vendor failure",
			chat:     &stubChat{err: errors.New("status 500")},
			checker:  &stubChecker{usable: true},
			body:     `{"transcript": "t"}`,
			claims:   &auth.Claims{UserID: "user_1"},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(NewService(tt.chat, discardLogger()), tt.checker, discardLogger())
			c, _ := analysisRequest(tt.body, tt.claims)

			err := h.Analyze(c)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTP error, got %v", err)
			}
			if he.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, he.Code)
			}
		})
	}
}
