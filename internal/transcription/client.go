package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	tokenExpiryDefault = 3600
	tokenExpiryMin     = 60
	tokenExpiryMax     = 360000

	defaultSampleRate = 16000
)

// Client calls the AssemblyAI realtime API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient returns a client for the given key, or nil when the key is blank
// so callers can treat transcription as unconfigured.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		baseURL: "https://api.assemblyai.com",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// clampExpiry keeps token lifetimes inside the vendor's accepted window.
func clampExpiry(seconds int) int {
	if seconds <= 0 {
		return tokenExpiryDefault
	}
	if seconds < tokenExpiryMin {
		return tokenExpiryMin
	}
	if seconds > tokenExpiryMax {
		return tokenExpiryMax
	}
	return seconds
}

type realtimeTokenRequest struct {
	ExpiresIn int `json:"expires_in"`
}

type realtimeTokenResponse struct {
	Token string `json:"token"`
}

// CreateRealtimeToken mints a temporary streaming token browsers can use to
// talk to AssemblyAI directly.
func (c *Client) CreateRealtimeToken(ctx context.Context, expiresIn int) (string, error) {
	body, err := json.Marshal(realtimeTokenRequest{ExpiresIn: clampExpiry(expiresIn)})
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/realtime/token", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assemblyai token request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read assemblyai token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assemblyai token API error (status %d): %s", resp.StatusCode, string(data))
	}

	var token realtimeTokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return "", fmt.Errorf("decode assemblyai token: %w", err)
	}
	if token.Token == "" {
		return "", errors.New("assemblyai token response missing token")
	}
	return token.Token, nil
}
