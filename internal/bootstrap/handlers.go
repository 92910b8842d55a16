package bootstrap

import (
	"log/slog"
	"os"
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
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideTokenService(cfg *Config) *auth.TokenService {
	return auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMin)*time.Minute)
}

func ProvideAuthMiddleware(tokens *auth.TokenService) *auth.Middleware {
	return auth.NewMiddleware(tokens)
}

func ProvideSessionManager(cfg *Config) *user.SessionManager {
	return user.NewSessionManager(cfg.JWTSecret, cfg.CookieSecure, cfg.CookieDomain)
}

// ProvideGoogleProvider returns a true nil interface when OAuth is not
// configured; a typed nil pointer would not compare equal to nil.
func ProvideGoogleProvider(cfg *Config) user.Provider {
	p := user.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	if p == nil {
		return nil
	}
	return p
}

func ProvideGoogleVerifier(cfg *Config) user.TokenVerifier {
	v := user.NewGoogleVerifier(cfg.GoogleClientID)
	if v == nil {
		return nil
	}
	return v
}

func ProvideUserHandler(
	store *user.Store,
	tokens *auth.TokenService,
	provider user.Provider,
	verifier user.TokenVerifier,
	sessions *user.SessionManager,
	cfg *Config,
	logger *slog.Logger,
) *user.Handler {
	return user.NewHandler(store, tokens, provider, verifier, sessions, cfg.FrontendURL, logger.With("handler", "user"))
}

func ProvideSubscriptionGate(store *subscription.Store, logger *slog.Logger) *subscription.Gate {
	return subscription.NewGate(store, logger.With("middleware", "subscription_gate"))
}

func ProvideSubscriptionHandler(store *subscription.Store, billing subscription.Billing, logger *slog.Logger) *subscription.Handler {
	return subscription.NewHandler(store, billing, logger.With("handler", "subscription"))
}

func ProvideTemplateHandler(store *template.Store, embeddings template.EmbeddingService, logger *slog.Logger) *template.Handler {
	return template.NewHandler(store, embeddings, logger.With("handler", "template"))
}

func ProvideInterviewHandler(
	store *interview.Store,
	templates *template.Store,
	credentials *credential.Service,
	logger *slog.Logger,
) *interview.Handler {
	return interview.NewHandler(store, templates, credentials, logger.With("handler", "interview"))
}

func ProvideCredentialHandler(
	service *credential.Service,
	interviews *interview.Store,
	templates *template.Store,
	logger *slog.Logger,
) *credential.Handler {
	return credential.NewHandler(service, interview.NewRefSource(interviews), templates, logger.With("handler", "webrtc"))
}

func ProvideTranscriptionHandler(client *transcription.Client, relay *transcription.Relay, logger *slog.Logger) *transcription.Handler {
	return transcription.NewHandler(client, relay, logger.With("handler", "assembly"))
}

func ProvideImagesHandler(client *images.Client, logger *slog.Logger) *images.Handler {
	return images.NewHandler(client, logger.With("handler", "images"))
}

func ProvideAnalysisHandler(service *analysis.Service, subscriptions *subscription.Store, logger *slog.Logger) *analysis.Handler {
	return analysis.NewHandler(service, subscriptions, logger.With("handler", "analysis"))
}

func ProvideDemoHandler(progress *demo.ProgressStore, credentials *credential.Service, logger *slog.Logger) *demo.Handler {
	return demo.NewHandler(progress, credentials, logger.With("handler", "demo"))
}

func ProvidePracticeHandler(tokens *practice.TokenService, logger *slog.Logger) *practice.Handler {
	return practice.NewHandler(tokens, logger.With("handler", "practice"))
}

func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.RequireAdmin(c); err != nil {
			return err
		}
		return next(c)
	}
}

type HandlerParams struct {
	fx.In

	UserHandler          *user.Handler
	SubscriptionHandler  *subscription.Handler
	TemplateHandler      *template.Handler
	InterviewHandler     *interview.Handler
	CredentialHandler    *credential.Handler
	TranscriptionHandler *transcription.Handler
	ImagesHandler        *images.Handler
	AnalysisHandler      *analysis.Handler
	DemoHandler          *demo.Handler
	PracticeHandler      *practice.Handler
	JWT                  *auth.Middleware
	Gate                 *subscription.Gate
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/api/v1")

	params.UserHandler.RegisterAuthRoutes(api.Group("/auth"))

	usersGroup := api.Group("/users")
	usersGroup.Use(params.JWT.Authenticate)
	params.UserHandler.RegisterUserRoutes(usersGroup)

	subsGroup := api.Group("/subscriptions")
	subsGroup.Use(params.JWT.Authenticate)
	params.SubscriptionHandler.RegisterRoutes(subsGroup)
	params.SubscriptionHandler.RegisterWebhook(api)

	templatesGroup := api.Group("/templates")
	templatesGroup.Use(params.JWT.Authenticate, params.Gate.RequireActive)
	params.TemplateHandler.RegisterRoutes(templatesGroup)

	templatesAdminGroup := api.Group("/templates")
	templatesAdminGroup.Use(params.JWT.Authenticate, adminOnly)
	params.TemplateHandler.RegisterAdminRoutes(templatesAdminGroup)

	interviewsGroup := api.Group("/interviews")
	interviewsGroup.Use(params.JWT.Authenticate, params.Gate.RequireActive)
	params.InterviewHandler.RegisterRoutes(interviewsGroup)

	webrtcGroup := api.Group("/webrtc")
	webrtcGroup.Use(params.JWT.Authenticate)
	params.CredentialHandler.RegisterRoutes(webrtcGroup)

	assemblyGroup := api.Group("/assembly")
	assemblyGroup.Use(params.JWT.Authenticate)
	params.TranscriptionHandler.RegisterRoutes(assemblyGroup)

	imagesGroup := api.Group("/images")
	imagesGroup.Use(params.JWT.Authenticate)
	params.ImagesHandler.RegisterRoutes(imagesGroup)

	analysisGroup := api.Group("/analysis")
	analysisGroup.Use(params.JWT.Authenticate)
	params.AnalysisHandler.RegisterRoutes(analysisGroup)

	params.DemoHandler.RegisterRoutes(api.Group("/demo"))

	practiceGroup := api.Group("/practice")
	practiceGroup.Use(params.JWT.Authenticate, params.Gate.RequireActive)
	params.PracticeHandler.RegisterRoutes(practiceGroup)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideTokenService,
		ProvideAuthMiddleware,
		ProvideSessionManager,
		ProvideGoogleProvider,
		ProvideGoogleVerifier,
		ProvideUserHandler,
		ProvideSubscriptionGate,
		ProvideSubscriptionHandler,
		ProvideTemplateHandler,
		ProvideInterviewHandler,
		ProvideCredentialHandler,
		ProvideTranscriptionHandler,
		ProvideImagesHandler,
		ProvideAnalysisHandler,
		ProvideDemoHandler,
		ProvidePracticeHandler,
	),
	fx.Invoke(RegisterRoutes),
)
