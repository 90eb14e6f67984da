package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"zoxnova/internal/domain"
)

// noContentFallback se usa cuando la respuesta del proveedor no trae
// choices[0].message.content; la extracción es best-effort, nunca falla duro.
const noContentFallback = "No content returned"

// HTTPClient implementa Provider contra un endpoint OpenAI-compatible.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye el cliente apuntando a la API de chat completions.
func NewHTTPClient(baseURL, apiKey, model string, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.emergent-llm.com/v1"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

type completionRequest struct {
	Model    string           `json:"model"`
	Messages []domain.Message `json:"messages"`
	Task     string           `json:"task"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]any `json:"usage"`
	Model string         `json:"model"`
}

func (c *HTTPClient) Complete(ctx context.Context, req domain.AIRequest) (domain.AIResponse, error) {
	payload := completionRequest{
		Model:    c.model,
		Messages: req.Messages,
		Task:     req.Task,
	}
	if len(payload.Messages) == 0 {
		payload.Messages = []domain.Message{{Role: "user", Content: req.Prompt}}
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AIResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("llm upstream error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return domain.AIResponse{}, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var cr completionResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return domain.AIResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}

	output := noContentFallback
	if len(cr.Choices) > 0 && cr.Choices[0].Message.Content != "" {
		output = cr.Choices[0].Message.Content
	}

	model := cr.Model
	if model == "" {
		model = c.model
	}
	meta := map[string]any{"model": model}
	if cr.Usage != nil {
		meta["usage"] = cr.Usage
	}

	return domain.AIResponse{Output: output, Meta: meta}, nil
}
