package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoxnova/internal/domain"
	"zoxnova/internal/llm"
	"zoxnova/internal/service"
)

func setupStudyRouter(provider llm.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStudyHandler(zap.NewNop(), service.NewLearnifyService(provider), service.NewQuizifyService(provider))
	r.POST("/learnify", h.Learnify)
	r.POST("/quizify", h.Quizify)
	return r
}

func TestLearnify_ReturnsProviderResponse(t *testing.T) {
	mock := &llm.MockProvider{Response: domain.AIResponse{Output: "bullet points"}}
	router := setupStudyRouter(mock)

	w := postJSON(t, router, "/learnify", `{"text":"hi","mode":"summary"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.AIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Output != "bullet points" {
		t.Fatalf("expected provider output, got %q", resp.Output)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.Calls)
	}
}

func TestLearnify_MissingModeIsBadRequest(t *testing.T) {
	mock := &llm.MockProvider{}
	router := setupStudyRouter(mock)

	w := postJSON(t, router, "/learnify", `{"text":"hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.Calls)
	}
}

func TestQuizify_StatsModeReturnsPlaceholder(t *testing.T) {
	mock := &llm.MockProvider{}
	router := setupStudyRouter(mock)

	w := postJSON(t, router, "/quizify", `{"topic":"x","mode":"stats"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.QuizPlaceholder
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Mode != "stats" {
		t.Fatalf("expected mode stats, got %q", resp.Mode)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("expected empty items array, got %v", resp.Items)
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no provider calls for stats mode, got %d", mock.Calls)
	}
}

func TestQuizify_DailyModeDelegatesToProvider(t *testing.T) {
	mock := &llm.MockProvider{Response: domain.AIResponse{Output: "[]"}}
	router := setupStudyRouter(mock)

	w := postJSON(t, router, "/quizify", `{"topic":"history","mode":"daily"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.Calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.Calls)
	}
	if mock.LastReq.Task != "quiz" {
		t.Fatalf("expected task quiz, got %q", mock.LastReq.Task)
	}
}

func TestQuizify_MissingTopicIsBadRequest(t *testing.T) {
	mock := &llm.MockProvider{}
	router := setupStudyRouter(mock)

	w := postJSON(t, router, "/quizify", `{"mode":"daily"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
