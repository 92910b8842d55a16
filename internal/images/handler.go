package images

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

const directUploadWindow = 30 * time.Minute

type Handler struct {
	client *Client
	logger *slog.Logger
}

func NewHandler(client *Client, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
	g.POST("/direct-upload", h.DirectUpload)
	g.DELETE("/:id", h.Delete)
}

// @Summary      Upload an image
// @Description  Uploads an image file to the hosting account and returns its delivery URL
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "Image file"
// @Param        metadata  formData  string  false  "JSON metadata to store with the image"
// @Success      201  {object}  dto.ImageUploadResponse
// @Failure      400  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError  "Admin access required"
// @Failure      502  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Image hosting not configured"
// @Security     BearerAuth
// @Router       /images/upload [post]
func (h *Handler) Upload(c echo.Context) error {
	if _, err := auth.RequireAdmin(c); err != nil {
		return err
	}
	if h.client == nil {
		return shared.ServiceUnavailable("images_unconfigured", "image hosting is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return shared.BadRequest("missing_file", "file is required")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return shared.BadRequest("invalid_file_type", "File must be an image")
	}

	var metadata map[string]string
	if raw := c.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			return shared.BadRequest("invalid_metadata", "metadata must be a JSON object of strings")
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", "error", err, "filename", fileHeader.Filename)
		return shared.BadRequest("invalid_file", "could not read uploaded file")
	}
	defer file.Close()

	uploaded, err := h.client.Upload(c.Request().Context(), fileHeader.Filename, contentType, file, metadata)
	if err != nil {
		h.logger.Error("failed to upload image", "error", err, "filename", fileHeader.Filename)
		return shared.BadGateway("vendor_failed", "failed to upload image")
	}

	return c.JSON(http.StatusCreated, dto.ImageUploadResponse{
		ID:       uploaded.ID,
		URL:      h.client.DeliveryURL(uploaded.ID, defaultVariant),
		Filename: uploaded.Filename,
		Uploaded: uploaded.Uploaded,
	})
}

// @Summary      Create a direct upload URL
// @Description  Reserves a one-time URL a browser can upload an image to; the slot expires after 30 minutes
// @Tags         images
// @Produce      json
// @Success      200  {object}  dto.DirectUploadResponse
// @Failure      403  {object}  shared.APIError  "Admin access required"
// @Failure      502  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Image hosting not configured"
// @Security     BearerAuth
// @Router       /images/direct-upload [post]
func (h *Handler) DirectUpload(c echo.Context) error {
	if _, err := auth.RequireAdmin(c); err != nil {
		return err
	}
	if h.client == nil {
		return shared.ServiceUnavailable("images_unconfigured", "image hosting is not configured")
	}

	slot, err := h.client.CreateDirectUpload(c.Request().Context(), time.Now().Add(directUploadWindow))
	if err != nil {
		h.logger.Error("failed to create direct upload", "error", err)
		return shared.BadGateway("vendor_failed", "failed to create direct upload URL")
	}

	return c.JSON(http.StatusOK, dto.DirectUploadResponse{
		ID:        slot.ID,
		UploadURL: slot.UploadURL,
		Expiry:    slot.Expiry,
	})
}

// @Summary      Delete an image
// @Description  Removes an image from the hosting account
// @Tags         images
// @Produce      json
// @Param        id  path  string  true  "Image ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  shared.APIError  "Admin access required"
// @Failure      404  {object}  shared.APIError
// @Failure      502  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError  "Image hosting not configured"
// @Security     BearerAuth
// @Router       /images/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	if _, err := auth.RequireAdmin(c); err != nil {
		return err
	}
	if h.client == nil {
		return shared.ServiceUnavailable("images_unconfigured", "image hosting is not configured")
	}

	imageID := c.Param("id")
	if err := h.client.Delete(c.Request().Context(), imageID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("image_not_found", "image not found")
		}
		h.logger.Error("failed to delete image", "error", err, "image_id", imageID)
		return shared.BadGateway("vendor_failed", "failed to delete image")
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Image deleted"})
}
