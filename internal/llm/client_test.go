package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoxnova/internal/domain"
)

type capturedPayload struct {
	Model    string           `json:"model"`
	Messages []domain.Message `json:"messages"`
	Task     string           `json:"task"`
}

func newUpstream(t *testing.T, captured *capturedPayload, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode payload: %v", err)
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestComplete_PromptBecomesSyntheticUserMessage(t *testing.T) {
	var captured capturedPayload
	srv := newUpstream(t, &captured, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	_, err := client.Complete(context.Background(), domain.AIRequest{Task: "quiz", Prompt: "X"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(captured.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "user" || captured.Messages[0].Content != "X" {
		t.Fatalf("unexpected synthetic message: %+v", captured.Messages[0])
	}
	if captured.Task != "quiz" {
		t.Fatalf("expected task quiz, got %q", captured.Task)
	}
}

func TestComplete_MessagesSentVerbatimIgnoringPrompt(t *testing.T) {
	var captured capturedPayload
	srv := newUpstream(t, &captured, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	req := domain.AIRequest{
		Task:     "chat",
		Messages: []domain.Message{{Role: "user", Content: "A"}},
		Prompt:   "ignored",
	}
	if _, err := client.Complete(context.Background(), req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(captured.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "user" || captured.Messages[0].Content != "A" {
		t.Fatalf("expected original message list, got %+v", captured.Messages)
	}
}

func TestComplete_EmptyRequestSendsEmptyUserMessage(t *testing.T) {
	var captured capturedPayload
	srv := newUpstream(t, &captured, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	if _, err := client.Complete(context.Background(), domain.AIRequest{Task: "chat"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(captured.Messages) != 1 || captured.Messages[0].Content != "" || captured.Messages[0].Role != "user" {
		t.Fatalf("expected single empty user message, got %+v", captured.Messages)
	}
}

func TestComplete_UpstreamErrorKeepsStatusAndBody(t *testing.T) {
	srv := newUpstream(t, nil, http.StatusTooManyRequests, "rate limited")
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	_, err := client.Complete(context.Background(), domain.AIRequest{Task: "chat", Prompt: "hi"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", upstream.Status)
	}
	if upstream.Body != "rate limited" {
		t.Fatalf("expected body preserved, got %q", upstream.Body)
	}
}

func TestComplete_MissingContentFallsBackToSentinel(t *testing.T) {
	srv := newUpstream(t, nil, http.StatusOK, `{}`)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	resp, err := client.Complete(context.Background(), domain.AIRequest{Task: "chat", Prompt: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Output != noContentFallback {
		t.Fatalf("expected fallback output, got %q", resp.Output)
	}
	if resp.Meta["model"] != "gpt-5.1" {
		t.Fatalf("expected configured model fallback, got %v", resp.Meta["model"])
	}
	if _, ok := resp.Meta["usage"]; ok {
		t.Fatalf("expected no usage when provider omits it, got %v", resp.Meta["usage"])
	}
}

func TestComplete_MetaFromProviderResponse(t *testing.T) {
	body := `{"choices":[{"message":{"content":"hello"}}],"usage":{"total_tokens":7},"model":"gpt-5.1-mini"}`
	srv := newUpstream(t, nil, http.StatusOK, body)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	resp, err := client.Complete(context.Background(), domain.AIRequest{Task: "chat", Prompt: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Output != "hello" {
		t.Fatalf("expected extracted content, got %q", resp.Output)
	}
	if resp.Meta["model"] != "gpt-5.1-mini" {
		t.Fatalf("expected provider model, got %v", resp.Meta["model"])
	}
	usage, ok := resp.Meta["usage"].(map[string]any)
	if !ok {
		t.Fatalf("expected usage map, got %T", resp.Meta["usage"])
	}
	if usage["total_tokens"] != float64(7) {
		t.Fatalf("expected total_tokens 7, got %v", usage["total_tokens"])
	}
}

func TestComplete_MalformedResponseIsInternalError(t *testing.T) {
	srv := newUpstream(t, nil, http.StatusOK, `not json`)
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", "gpt-5.1", nil)
	_, err := client.Complete(context.Background(), domain.AIRequest{Task: "chat", Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error on malformed response")
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		t.Fatalf("malformed body should not be an upstream error, got %v", err)
	}
}
