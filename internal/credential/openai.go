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
	realtimeSessionsPath = "/v1/realtime/sessions"
	realtimeModel        = "gpt-4o-mini-realtime-preview"

	// VoiceInterviewer is used for authenticated sessions, VoiceDemo for the
	// unauthenticated demo flow.
	VoiceInterviewer = "alloy"
	VoiceDemo        = "echo"
)

// ErrKeyRejected marks an auth-style vendor refusal. The ladder sidelines
// the key and moves on instead of retrying it.
var ErrKeyRejected = errors.New("api key rejected")

// RealtimeClient mints ephemeral OpenAI Realtime sessions.
type RealtimeClient struct {
	baseURL string
	client  *http.Client
}

// NewRealtimeClient returns a client against the public OpenAI API.
func NewRealtimeClient() *RealtimeClient {
	return &RealtimeClient{
		baseURL: "https://api.openai.com",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type realtimeSessionRequest struct {
	Model                   string        `json:"model"`
	Modalities              []string      `json:"modalities"`
	Instructions            string        `json:"instructions"`
	Voice                   string        `json:"voice"`
	Temperature             float64       `json:"temperature"`
	InputAudioFormat        string        `json:"input_audio_format"`
	OutputAudioFormat       string        `json:"output_audio_format"`
	MaxResponseOutputTokens string        `json:"max_response_output_tokens"`
	TurnDetection           turnDetection `json:"turn_detection"`
}

type turnDetection struct {
	Type              string  `json:"type"`
	Threshold         float64 `json:"threshold"`
	PrefixPaddingMs   int     `json:"prefix_padding_ms"`
	SilenceDurationMs int     `json:"silence_duration_ms"`
}

// CreateSession requests a new Realtime session using the given key. A 401
// or 403 reply wraps ErrKeyRejected so callers can rotate.
func (c *RealtimeClient) CreateSession(ctx context.Context, apiKey, instructions, voice string) (*RealtimeSession, error) {
	payload := realtimeSessionRequest{
		Model:                   realtimeModel,
		Modalities:              []string{"audio", "text"},
		Instructions:            instructions,
		Voice:                   voice,
		Temperature:             0.8,
		InputAudioFormat:        "pcm16",
		OutputAudioFormat:       "pcm16",
		MaxResponseOutputTokens: "inf",
		TurnDetection: turnDetection{
			Type:              "server_vad",
			Threshold:         0.5,
			PrefixPaddingMs:   300,
			SilenceDurationMs: 200,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal realtime session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+realtimeSessionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build realtime session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("realtime session request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read realtime session response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("realtime sessions API (status %d): %w", resp.StatusCode, ErrKeyRejected)
	default:
		return nil, fmt.Errorf("realtime sessions API error (status %d): %s", resp.StatusCode, string(data))
	}

	var session RealtimeSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode realtime session: %w", err)
	}
	return &session, nil
}
