package service

import (
	"context"
	"strings"

	"zoxnova/internal/domain"
	"zoxnova/internal/llm"
)

const defaultNumQuestions = 10

// QuizifyService genera quizzes delegando en el proxy de LLM.
type QuizifyService struct {
	provider llm.Provider
}

func NewQuizifyService(provider llm.Provider) *QuizifyService {
	return &QuizifyService{provider: provider}
}

// Quizify arma el prompt según el modo y delega en el proveedor. Los modos
// stats/ranks cortocircuitan con un placeholder vacío sin llamar al proveedor;
// en ese caso la respuesta AIResponse queda en cero. El task es siempre "quiz".
func (s *QuizifyService) Quizify(ctx context.Context, req domain.QuizRequest) (domain.AIResponse, *domain.QuizPlaceholder, error) {
	mode := strings.ToLower(req.Mode)

	var prompt string
	switch mode {
	case "daily":
		prompt = buildDailyQuizPrompt(req.Topic)
	case "stats", "ranks":
		return domain.AIResponse{}, &domain.QuizPlaceholder{Mode: req.Mode, Items: []any{}}, nil
	default:
		n := req.NumQuestions
		if n <= 0 {
			n = defaultNumQuestions
		}
		prompt = buildCustomQuizPrompt(n, req.Topic)
	}

	resp, err := s.provider.Complete(ctx, domain.AIRequest{
		Task:   "quiz",
		Prompt: prompt,
	})
	if err != nil {
		return domain.AIResponse{}, nil, err
	}
	return resp, nil, nil
}
