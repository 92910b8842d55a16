package bootstrap

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caseprepared/backend/internal/analysis"
	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/credential"
	"github.com/caseprepared/backend/internal/demo"
	"github.com/caseprepared/backend/internal/images"
	"github.com/caseprepared/backend/internal/interview"
	"github.com/caseprepared/backend/internal/practice"
	"github.com/caseprepared/backend/internal/subscription"
	"github.com/caseprepared/backend/internal/template"
	"github.com/caseprepared/backend/internal/transcription"
	"github.com/caseprepared/backend/internal/user"
	"github.com/labstack/echo/v4"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testHandlerParams builds the route table's inputs. Registration only
// stores the handlers, so their internals can stay nil.
func testHandlerParams() HandlerParams {
	logger := discardLogger()
	return HandlerParams{
		UserHandler:          user.NewHandler(nil, nil, nil, nil, nil, "", logger),
		SubscriptionHandler:  subscription.NewHandler(nil, nil, logger),
		TemplateHandler:      template.NewHandler(nil, nil, logger),
		InterviewHandler:     interview.NewHandler(nil, nil, nil, logger),
		CredentialHandler:    credential.NewHandler(nil, nil, nil, logger),
		TranscriptionHandler: transcription.NewHandler(nil, nil, logger),
		ImagesHandler:        images.NewHandler(nil, logger),
		AnalysisHandler:      analysis.NewHandler(nil, nil, logger),
		DemoHandler:          demo.NewHandler(nil, nil, logger),
		PracticeHandler:      practice.NewHandler(nil, logger),
		JWT:                  auth.NewMiddleware(auth.NewTokenService([]byte("test-secret"), time.Minute)),
		Gate:                 subscription.NewGate(nil, logger),
	}
}

func TestRegisterRoutesTable(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, testHandlerParams())

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/google-login",
		"GET /api/v1/auth/google",
		"GET /api/v1/auth/google/callback",
		"GET /api/v1/auth/session",
		"POST /api/v1/auth/logout",
		"GET /api/v1/users/me",
		"PATCH /api/v1/users/me",
		"GET /api/v1/users/:id",
		"GET /api/v1/subscriptions",
		"POST /api/v1/subscriptions",
		"POST /api/v1/subscriptions/create-stripe-subscription",
		"POST /api/v1/subscriptions/create-setup-intent",
		"POST /api/v1/subscriptions/cancel",
		"POST /api/v1/subscriptions/webhook",
		"GET /api/v1/templates",
		"GET /api/v1/templates/search",
		"GET /api/v1/templates/:id",
		"POST /api/v1/templates",
		"PUT /api/v1/templates/:id",
		"DELETE /api/v1/templates/:id",
		"GET /api/v1/interviews",
		"POST /api/v1/interviews",
		"GET /api/v1/interviews/:id",
		"PATCH /api/v1/interviews/:id",
		"POST /api/v1/interviews/:id/credentials",
		"POST /api/v1/interviews/:id/questions/:n/token",
		"GET /api/v1/webrtc/turn-credentials",
		"POST /api/v1/webrtc/openai-ephemeral-key",
		"GET /api/v1/assembly/token",
		"GET /api/v1/assembly/stream",
		"POST /api/v1/images/upload",
		"POST /api/v1/images/direct-upload",
		"DELETE /api/v1/images/:id",
		"POST /api/v1/analysis",
		"GET /api/v1/demo/templates",
		"GET /api/v1/demo/templates/:id",
		"GET /api/v1/demo/interviews/:case_type",
		"GET /api/v1/demo/interviews/:case_type/questions/:n/token",
		"POST /api/v1/demo/interviews/complete-question",
		"POST /api/v1/demo/reset/:case_type",
		"GET /api/v1/demo/turn-credentials",
		"GET /api/v1/demo/direct-token/:case_type/:n",
		"POST /api/v1/practice/rooms",
		"POST /api/v1/practice/rooms/:room/token",
		"GET /swagger/*",
	}
	for _, route := range want {
		if !registered[route] {
			t.Errorf("%s not registered", route)
		}
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name     string
		claims   *auth.Claims
		wantCode int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"non-admin", &auth.Claims{UserID: "user_1"}, http.StatusForbidden},
		{"admin", &auth.Claims{UserID: "user_1", IsAdmin: true}, 0},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/templates", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.claims != nil {
				auth.SetClaimsForTest(c, tt.claims)
			}

			called := false
			next := func(c echo.Context) error {
				called = true
				return nil
			}

			err := adminOnly(next)(c)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("adminOnly: %v", err)
				}
				if !called {
					t.Error("next handler not called for admin")
				}
				return
			}

			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != tt.wantCode {
				t.Fatalf("adminOnly err = %v, want HTTP %d", err, tt.wantCode)
			}
			if called {
				t.Error("next handler called despite rejection")
			}
		})
	}
}
