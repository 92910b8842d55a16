package template

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	openAIBaseURL  = "https://api.openai.com/v1"
	embeddingModel = "text-embedding-3-small"
)

// EmbeddingService turns free text into a vector for semantic search.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbeddings calls the OpenAI embeddings endpoint.
type OpenAIEmbeddings struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewOpenAIEmbeddings returns nil when no API key is configured; search is
// then unavailable but the rest of the API keeps working.
func NewOpenAIEmbeddings(apiKey string) *OpenAIEmbeddings {
	if apiKey == "" {
		return nil
	}
	return &OpenAIEmbeddings{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    openAIBaseURL,
		apiKey:     apiKey,
		model:      embeddingModel,
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (e *OpenAIEmbeddings) Generate(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embeddingRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embeddings returned status %d", resp.StatusCode)
	}

	var parsed embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("embeddings response contained no vectors")
	}
	return parsed.Data[0].Embedding, nil
}
