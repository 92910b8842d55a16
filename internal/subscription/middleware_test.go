package subscription

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/labstack/echo/v4"
)

func TestGate_RequireActive(t *testing.T) {
	store := setupTestSubDB(t)
	ctx := context.Background()
	gate := NewGate(store, slog.Default())

	store.Create(ctx, &Subscription{UserID: "user_paid", Plan: "monthly", Status: StatusActive})
	store.Create(ctx, &Subscription{UserID: "user_lapsed", Plan: "monthly", Status: StatusCancelled})

	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name     string
		userID   string
		wantCode int
	}{
		{name: "active subscription passes", userID: "user_paid", wantCode: http.StatusOK},
		{name: "cancelled subscription blocked", userID: "user_lapsed", wantCode: http.StatusPaymentRequired},
		{name: "no subscription blocked", userID: "user_free", wantCode: http.StatusPaymentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			auth.SetClaimsForTest(c, &auth.Claims{UserID: tt.userID})

			err := gate.RequireActive(next)(c)
			if tt.wantCode == http.StatusOK {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}

			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", he.Code, tt.wantCode)
			}
		})
	}

	t.Run("missing claims rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := gate.RequireActive(next)(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", err)
		}
	})
}
