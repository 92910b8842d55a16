package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestMiddleware() (*Middleware, *TokenService) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	return NewMiddleware(tokens), tokens
}

func echoHandler(c echo.Context) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.String(http.StatusOK, "anonymous")
	}
	return c.String(http.StatusOK, claims.UserID)
}

func TestMiddleware_Authenticate(t *testing.T) {
	m, tokens := newTestMiddleware()
	validToken, err := tokens.Issue("user_123", "user@example.com", "Test", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expiredTokens := NewTokenService([]byte("test-secret"), -time.Minute)
	expiredToken, _ := expiredTokens.Issue("user_123", "", "", "", false)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   "user_123",
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.Authenticate(echoHandler)(c)

			if tt.wantStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if rec.Body.String() != tt.wantBody {
					t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
				}
				return
			}

			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %T", err)
			}
			if httpErr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, httpErr.Code)
			}
		})
	}
}

func TestMiddleware_OptionalAuthenticate(t *testing.T) {
	m, tokens := newTestMiddleware()
	validToken, _ := tokens.Issue("user_456", "", "", "", false)

	tests := []struct {
		name     string
		header   string
		wantBody string
	}{
		{"no header", "", "anonymous"},
		{"invalid token", "Bearer junk", "anonymous"},
		{"valid token", "Bearer " + validToken, "user_456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := m.OptionalAuthenticate(echoHandler)(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if _, err := RequireAuth(c); err == nil {
		t.Error("expected error without claims")
	}

	SetClaimsForTest(c, &Claims{UserID: "user_789"})
	userID, err := RequireAuth(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user_789" {
		t.Errorf("expected user_789, got %s", userID)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		claims   *Claims
		wantCode int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"non-admin", &Claims{UserID: "user_1"}, http.StatusForbidden},
		{"admin", &Claims{UserID: "user_2", IsAdmin: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.claims != nil {
				SetClaimsForTest(c, tt.claims)
			}

			claims, err := RequireAdmin(c)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if claims.UserID != tt.claims.UserID {
					t.Errorf("expected %s, got %s", tt.claims.UserID, claims.UserID)
				}
				return
			}

			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %T", err)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, httpErr.Code)
			}
		})
	}
}
