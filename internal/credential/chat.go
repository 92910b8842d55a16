package credential

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
	chatCompletionsPath = "/v1/chat/completions"
	chatModel           = "gpt-4o-mini"
)

// ChatClient calls the OpenAI chat completions endpoint through the key
// ring, so transcript analysis shares rotation state with session minting.
type ChatClient struct {
	baseURL string
	ring    *KeyRing
	client  *http.Client
}

// NewChatClient returns a client backed by the given ring.
func NewChatClient(ring *KeyRing) *ChatClient {
	return &ChatClient{
		baseURL: "https://api.openai.com",
		ring:    ring,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
	Messages       []chatMessage  `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompleteJSON sends a system and user message, requests a strict JSON
// object reply, and returns the raw content bytes. Keys come from the ring;
// an auth refusal sidelines the key and the call fails.
func (c *ChatClient) CompleteJSON(ctx context.Context, system, user string) ([]byte, error) {
	key, err := c.ring.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	payload := chatRequest{
		Model:          chatModel,
		ResponseFormat: map[string]any{"type": "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completions request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat completions response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.ring.MarkFailure(key)
		return nil, fmt.Errorf("chat completions API (status %d): %w", resp.StatusCode, ErrKeyRejected)
	default:
		return nil, fmt.Errorf("chat completions API error (status %d): %s", resp.StatusCode, string(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode chat completions response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("chat completions response has no choices")
	}
	return []byte(parsed.Choices[0].Message.Content), nil
}
