package transcription

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/labstack/echo/v4"
)

func tokenRequest(e *echo.Echo, target, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		auth.SetClaimsForTest(c, &auth.Claims{UserID: userID, Email: userID + "@example.com"})
	}
	return c, rec
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h := NewHandler(nil, nil, discardLogger())
	e := echo.New()
	h.RegisterRoutes(e.Group("/assembly"))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /assembly/token",
		"GET /assembly/stream",
	} {
		if !registered[want] {
			t.Errorf("expected route %s to be registered", want)
		}
	}
}

func TestHandler_Token(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req realtimeTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ExpiresIn != 900 {
			t.Errorf("expected expires_in 900, got %d", req.ExpiresIn)
		}
		fmt.Fprint(w, `{"token":"temp_tok_900"}`)
	})
	h := NewHandler(client, nil, discardLogger())
	e := echo.New()

	c, rec := tokenRequest(e, "/assembly/token?expires_in=900", "user_1")
	if err := h.Token(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.AssemblyTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "temp_tok_900" {
		t.Errorf("expected temp_tok_900, got %s", resp.Token)
	}
}

func TestHandler_Token_Errors(t *testing.T) {
	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	tests := []struct {
		name     string
		client   *Client
		userID   string
		wantCode int
	}{
		{"unauthenticated", failing, "", http.StatusUnauthorized},
		{"unconfigured", nil, "user_1", http.StatusServiceUnavailable},
		{"vendor failure", failing, "user_1", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.client, nil, discardLogger())
			e := echo.New()

			c, _ := tokenRequest(e, "/assembly/token", tt.userID)
			err := h.Token(c)

			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != tt.wantCode {
				t.Fatalf("expected %d, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestHandler_Stream_Unconfigured(t *testing.T) {
	h := NewHandler(nil, nil, discardLogger())
	e := echo.New()

	c, _ := tokenRequest(e, "/assembly/stream", "user_1")
	err := h.Stream(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %v", err)
	}
}

func TestHandler_Stream_Unauthorized(t *testing.T) {
	h := NewHandler(nil, NewRelay("aai-key", discardLogger()), discardLogger())
	e := echo.New()

	c, _ := tokenRequest(e, "/assembly/stream", "")
	err := h.Stream(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
