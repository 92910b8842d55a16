package transcription

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// Handler surfaces AssemblyAI access to clients: a short-lived token for
// direct connections and a relay for browsers that must not see vendor
// errors or keys.
type Handler struct {
	client *Client
	relay  *Relay
	logger *slog.Logger
}

func NewHandler(client *Client, relay *Relay, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		relay:  relay,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/token", h.Token)
	g.GET("/stream", h.Stream)
}

// @Summary      Mint a transcription token
// @Description  Returns a temporary AssemblyAI realtime token
// @Tags         transcription
// @Produce      json
// @Param        expires_in  query  int  false  "Token lifetime in seconds (clamped to 60..360000)"
// @Success      200  {object}  dto.AssemblyTokenResponse
// @Failure      401  {object}  shared.APIError
// @Failure      502  {object}  shared.APIError  "Vendor call failed"
// @Failure      503  {object}  shared.APIError  "Transcription not configured"
// @Security     BearerAuth
// @Router       /assembly/token [get]
func (h *Handler) Token(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.client == nil {
		return shared.ServiceUnavailable("transcription_unconfigured", "transcription is not configured")
	}

	expiresIn, _ := strconv.Atoi(c.QueryParam("expires_in"))
	token, err := h.client.CreateRealtimeToken(c.Request().Context(), expiresIn)
	if err != nil {
		h.logger.Error("failed to mint assemblyai token", "error", err, "user_id", claims.UserID)
		return shared.BadGateway("vendor_failed", "failed to mint transcription token")
	}

	return c.JSON(http.StatusOK, dto.AssemblyTokenResponse{Token: token})
}

// @Summary      Stream transcription
// @Description  Relays a websocket to the AssemblyAI realtime endpoint, keeping the API key server-side
// @Tags         transcription
// @Param        sample_rate  query  int  false  "Audio sample rate (default 16000)"
// @Success      101  {string}  string  "Switching protocols"
// @Failure      401  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Transcription not configured"
// @Security     BearerAuth
// @Router       /assembly/stream [get]
func (h *Handler) Stream(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.relay == nil {
		return shared.ServiceUnavailable("transcription_unconfigured", "transcription is not configured")
	}
	return h.relay.Serve(c)
}
