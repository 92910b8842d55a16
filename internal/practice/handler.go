package practice

import (
	"log/slog"
	"net/http"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	tokens *TokenService
	logger *slog.Logger
}

func NewHandler(tokens *TokenService, logger *slog.Logger) *Handler {
	return &Handler{
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/rooms", h.CreateRoom)
	g.POST("/rooms/:room/token", h.JoinRoom)
}

// @Summary      Create a practice room
// @Description  Mints a fresh room name and a join token for the caller
// @Tags         practice
// @Produce      json
// @Success      200  {object}  dto.PracticeRoomResponse
// @Failure      401  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Peer practice not configured"
// @Security     BearerAuth
// @Router       /practice/rooms [post]
func (h *Handler) CreateRoom(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.tokens == nil {
		return shared.ServiceUnavailable("practice_unconfigured", "peer practice is not configured")
	}

	room := h.tokens.GenerateRoomName()
	token, err := h.tokens.GenerateToken(claims.UserID, room)
	if err != nil {
		h.logger.Error("failed to mint practice token", "error", err, "user_id", claims.UserID, "room", room)
		return shared.InternalError("token_failed", "failed to create practice room")
	}

	return c.JSON(http.StatusOK, dto.PracticeRoomResponse{
		Room:  room,
		Token: token,
		URL:   h.tokens.URL(),
	})
}

// @Summary      Join a practice room
// @Description  Mints a join token for an existing room name
// @Tags         practice
// @Produce      json
// @Param        room  path  string  true  "Room name"
// @Success      200  {object}  dto.PracticeRoomResponse
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Failure      402  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Peer practice not configured"
// @Security     BearerAuth
// @Router       /practice/rooms/{room}/token [post]
func (h *Handler) JoinRoom(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.tokens == nil {
		return shared.ServiceUnavailable("practice_unconfigured", "peer practice is not configured")
	}

	room := c.Param("room")
	if room == "" {
		return shared.BadRequest("missing_room", "room name is required")
	}

	token, err := h.tokens.GenerateToken(claims.UserID, room)
	if err != nil {
		h.logger.Error("failed to mint practice token", "error", err, "user_id", claims.UserID, "room", room)
		return shared.InternalError("token_failed", "failed to join practice room")
	}

	return c.JSON(http.StatusOK, dto.PracticeRoomResponse{
		Room:  room,
		Token: token,
		URL:   h.tokens.URL(),
	})
}
