package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/caseprepared/backend/internal/shared"
)

const defaultVariant = "public"

// Client talks to the Cloudflare Images API for one account.
type Client struct {
	baseURL     string
	accountID   string
	apiToken    string
	deliveryURL string
	client      *http.Client
}

// NewClient returns a client, or nil when the account or token is blank so
// callers can treat image hosting as unconfigured.
func NewClient(accountID, apiToken, deliveryURL string) *Client {
	if accountID == "" || apiToken == "" {
		return nil
	}
	return &Client{
		baseURL:     "https://api.cloudflare.com",
		accountID:   accountID,
		apiToken:    apiToken,
		deliveryURL: strings.TrimRight(deliveryURL, "/"),
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UploadedImage is the slice of an upload result the handlers need.
type UploadedImage struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Uploaded bool     `json:"uploaded"`
	Variants []string `json:"variants"`
}

// DirectUpload is a one-time browser upload slot.
type DirectUpload struct {
	ID        string    `json:"id"`
	UploadURL string    `json:"uploadURL"`
	Expiry    time.Time `json:"expiry"`
}

// Upload pushes an image to the account's library. Metadata is optional and
// stored verbatim alongside the image.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data io.Reader, metadata map[string]string) (*UploadedImage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("copy file data: %w", err)
	}
	if len(metadata) > 0 {
		meta, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("marshal metadata: %w", err)
		}
		if err := writer.WriteField("metadata", string(meta)); err != nil {
			return nil, fmt.Errorf("write metadata field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("%s/client/v4/accounts/%s/images/v1", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploaded UploadedImage
	if err := c.do(req, &uploaded); err != nil {
		return nil, err
	}
	if uploaded.Filename == "" {
		uploaded.Filename = filename
	}
	return &uploaded, nil
}

// CreateDirectUpload reserves a URL browsers can push an image to without
// touching this server. The slot expires at the given time.
func (c *Client) CreateDirectUpload(ctx context.Context, expiry time.Time) (*DirectUpload, error) {
	payload, err := json.Marshal(map[string]string{
		"expiry": expiry.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal direct upload request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/client/v4/accounts/%s/images/v1/direct_upload", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build direct upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	var slot DirectUpload
	if err := c.do(req, &slot); err != nil {
		return nil, err
	}
	if slot.Expiry.IsZero() {
		slot.Expiry = expiry
	}
	return &slot, nil
}

// Delete removes an image. A vendor 404 comes back as shared.ErrNotFound.
func (c *Client) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/client/v4/accounts/%s/images/v1/%s", c.baseURL, c.accountID, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	return c.do(req, nil)
}

// DeliveryURL builds the public URL for an image variant.
func (c *Client) DeliveryURL(id, variant string) string {
	if variant == "" {
		variant = defaultVariant
	}
	if c.deliveryURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", c.deliveryURL, id, variant)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cloudflare images request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read cloudflare images response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return shared.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cloudflare images API error (status %d): %s", resp.StatusCode, string(data))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode cloudflare images response: %w", err)
	}
	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			return fmt.Errorf("cloudflare images API error %d: %s", envelope.Errors[0].Code, envelope.Errors[0].Message)
		}
		return fmt.Errorf("cloudflare images API reported failure")
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decode cloudflare images result: %w", err)
		}
	}
	return nil
}
