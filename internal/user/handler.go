package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

const minPasswordLength = 8

type Handler struct {
	store       *Store
	tokens      *auth.TokenService
	provider    Provider
	verifier    TokenVerifier
	sessions    *SessionManager
	frontendURL string
	logger      *slog.Logger
}

func NewHandler(
	store *Store,
	tokens *auth.TokenService,
	provider Provider,
	verifier TokenVerifier,
	sessions *SessionManager,
	frontendURL string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:       store,
		tokens:      tokens,
		provider:    provider,
		verifier:    verifier,
		sessions:    sessions,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (h *Handler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/google-login", h.GoogleLogin)
	g.GET("/google", h.GoogleRedirect)
	g.GET("/google/callback", h.GoogleCallback)
	g.GET("/session", h.SessionToken)
	g.POST("/logout", h.Logout)
}

func (h *Handler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.PATCH("/me", h.UpdateMe)
	g.GET("/:id", h.GetByID)
}

// @Summary      Register a new account
// @Description  Creates a user with email and password and returns an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.RegisterRequest  true  "Registration details"
// @Success      201  {object}  dto.TokenResponse
// @Failure      400  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError  "Email already registered"
// @Router       /auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	email := normalizeEmail(req.Email)
	if email == "" {
		return shared.BadRequest("invalid_email", "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return shared.BadRequest("weak_password", "password must be at least 8 characters")
	}

	ctx := c.Request().Context()
	if _, err := h.store.GetByEmail(ctx, email); err == nil {
		return shared.Conflict("email_taken", "a user with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("failed to check existing email", "error", err)
		return shared.InternalError("lookup_failed", "failed to check existing users")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		return shared.InternalError("hash_failed", "failed to create user")
	}

	u := &User{
		Email:          email,
		FullName:       strings.TrimSpace(req.FullName),
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := h.store.Create(ctx, u); err != nil {
		h.logger.Error("failed to create user", "error", err)
		return shared.InternalError("create_failed", "failed to create user")
	}

	return h.issueToken(c, http.StatusCreated, u)
}

// @Summary      Log in
// @Description  Exchanges email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  shared.APIError
// @Router       /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	u, err := h.store.GetByEmail(c.Request().Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.Unauthorized("invalid_credentials", "incorrect email or password")
		}
		h.logger.Error("failed to look up user", "error", err)
		return shared.InternalError("lookup_failed", "failed to look up user")
	}

	if !VerifyPassword(u.HashedPassword, req.Password) {
		return shared.Unauthorized("invalid_credentials", "incorrect email or password")
	}
	if !u.IsActive {
		return shared.Unauthorized("inactive_user", "user account is inactive")
	}

	return h.issueToken(c, http.StatusOK, u)
}

// @Summary      Log in with a Google ID token
// @Description  Verifies a Google ID token obtained by the frontend and returns an access token
// @Tags         auth
// @Produce      json
// @Param        token  query  string  true  "Google ID token"
// @Success      200  {object}  dto.TokenResponse
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Google login not configured"
// @Router       /auth/google-login [post]
func (h *Handler) GoogleLogin(c echo.Context) error {
	if h.verifier == nil {
		return shared.ServiceUnavailable("google_unconfigured", "google login is not configured")
	}

	idToken := c.QueryParam("token")
	if idToken == "" {
		return shared.BadRequest("missing_token", "token query parameter is required")
	}

	ctx := c.Request().Context()
	info, err := h.verifier.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, ErrInvalidGoogleToken) {
			return shared.Unauthorized("invalid_google_token", "invalid google token")
		}
		h.logger.Error("google token verification failed", "error", err)
		return shared.BadGateway("google_unavailable", "failed to verify google token")
	}
	if info.Email == "" {
		return shared.BadRequest("missing_email", "email not available in google token")
	}

	u, err := h.store.FindOrCreateGoogle(ctx, info.Sub, normalizeEmail(info.Email), info.Name, info.AvatarURL)
	if err != nil {
		h.logger.Error("failed to resolve google user", "error", err)
		return shared.InternalError("create_failed", "failed to resolve user")
	}
	if !u.IsActive {
		return shared.Unauthorized("inactive_user", "user account is inactive")
	}

	return h.issueToken(c, http.StatusOK, u)
}

// @Summary      Start the Google OAuth flow
// @Description  Redirects the browser to Google's consent screen
// @Tags         auth
// @Param        redirect_uri  query  string  false  "Frontend path to return to after login"
// @Success      302
// @Failure      503  {object}  shared.APIError  "Google login not configured"
// @Router       /auth/google [get]
func (h *Handler) GoogleRedirect(c echo.Context) error {
	if h.provider == nil {
		return shared.ServiceUnavailable("google_unconfigured", "google login is not configured")
	}

	state := h.sessions.GenerateOAuthState(c.QueryParam("redirect_uri"))
	return c.Redirect(http.StatusFound, h.provider.AuthURL(state))
}

// @Summary      Google OAuth callback
// @Description  Exchanges the authorization code, signs the user in and redirects back to the frontend
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "Signed OAuth state"
// @Success      302
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Router       /auth/google/callback [get]
func (h *Handler) GoogleCallback(c echo.Context) error {
	if h.provider == nil {
		return shared.ServiceUnavailable("google_unconfigured", "google login is not configured")
	}

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return shared.BadRequest("invalid_callback", "missing code or state")
	}
	if _, err := h.sessions.VerifyValue(state); err != nil {
		return shared.Unauthorized("invalid_state", "oauth state did not verify")
	}

	ctx := c.Request().Context()
	info, err := h.provider.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("google code exchange failed", "error", err)
		return shared.BadGateway("exchange_failed", "failed to exchange authorization code")
	}
	if info.Email == "" {
		return shared.BadRequest("missing_email", "email not available from google")
	}

	u, err := h.store.FindOrCreateGoogle(ctx, info.Sub, normalizeEmail(info.Email), info.Name, info.AvatarURL)
	if err != nil {
		h.logger.Error("failed to resolve google user", "error", err)
		return shared.InternalError("create_failed", "failed to resolve user")
	}
	if !u.IsActive {
		return shared.Unauthorized("inactive_user", "user account is inactive")
	}

	token, err := h.tokens.Issue(u.ID, u.Email, u.FullName, u.AvatarURL, u.IsAdmin)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", u.ID)
		return shared.InternalError("token_failed", "failed to issue access token")
	}

	h.sessions.Create(c, u.ID)

	redirect := h.sessions.ExtractRedirectURI(state)
	if redirect == "" || !strings.HasPrefix(redirect, h.frontendURL) {
		redirect = h.frontendURL
	}
	return c.Redirect(http.StatusFound, redirect+"#access_token="+token)
}

// @Summary      Refresh from session cookie
// @Description  Issues a fresh access token for a browser holding a valid session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  shared.APIError
// @Router       /auth/session [get]
func (h *Handler) SessionToken(c echo.Context) error {
	userID, _, err := h.sessions.Get(c)
	if err != nil {
		return shared.Unauthorized("auth_required", "no valid session")
	}

	u, err := h.store.GetByID(c.Request().Context(), userID)
	if err != nil || !u.IsActive {
		h.sessions.Clear(c)
		return shared.Unauthorized("auth_required", "no valid session")
	}

	return h.issueToken(c, http.StatusOK, u)
}

// @Summary      Log out
// @Description  Clears the session cookies
// @Tags         auth
// @Success      204  "No Content"
// @Failure      403  {object}  shared.APIError  "CSRF check failed"
// @Router       /auth/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	_, csrf, err := h.sessions.Get(c)
	if err != nil {
		h.sessions.Clear(c)
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.sessions.RequireCSRF(c, csrf); err != nil {
		return err
	}

	h.sessions.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Get current user
// @Description  Returns the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *Handler) Me(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	u, err := h.store.GetByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return shared.NotFound("user_not_found", "user not found")
	}

	return c.JSON(http.StatusOK, toResponse(u))
}

// @Summary      Update current user
// @Description  Updates the authenticated user's name or password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body  dto.UpdateUserRequest  true  "Fields to update"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /users/me [patch]
func (h *Handler) UpdateMe(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	ctx := c.Request().Context()
	u, err := h.store.GetByID(ctx, claims.UserID)
	if err != nil {
		return shared.NotFound("user_not_found", "user not found")
	}

	if req.FullName != nil {
		u.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			return shared.BadRequest("weak_password", "password must be at least 8 characters")
		}
		hash, err := HashPassword(*req.Password)
		if err != nil {
			h.logger.Error("failed to hash password", "error", err, "user_id", u.ID)
			return shared.InternalError("hash_failed", "failed to update user")
		}
		u.HashedPassword = hash
	}

	if err := h.store.Update(ctx, u); err != nil {
		h.logger.Error("failed to update user", "error", err, "user_id", u.ID)
		return shared.InternalError("update_failed", "failed to update user")
	}

	return c.JSON(http.StatusOK, toResponse(u))
}

// @Summary      Get a user by ID
// @Description  Returns a user's profile; only the user themselves or an admin may look it up
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *Handler) GetByID(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	id := c.Param("id")
	if id != claims.UserID && !claims.IsAdmin {
		return shared.Forbidden("not_authorized", "cannot view another user's profile")
	}

	u, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		return shared.NotFound("user_not_found", "user not found")
	}

	return c.JSON(http.StatusOK, toResponse(u))
}

func (h *Handler) issueToken(c echo.Context, status int, u *User) error {
	token, err := h.tokens.Issue(u.ID, u.Email, u.FullName, u.AvatarURL, u.IsAdmin)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", u.ID)
		return shared.InternalError("token_failed", "failed to issue access token")
	}
	return c.JSON(status, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func toResponse(u *User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}
