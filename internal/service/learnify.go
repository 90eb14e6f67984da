package service

import (
	"context"

	"zoxnova/internal/domain"
	"zoxnova/internal/llm"
)

// LearnifyService transforma texto de estudio delegando en el proxy de LLM.
type LearnifyService struct {
	provider llm.Provider
}

func NewLearnifyService(provider llm.Provider) *LearnifyService {
	return &LearnifyService{provider: provider}
}

// Learnify arma el prompt según el modo y delega en el proveedor.
// El task es siempre "summarize", independiente del modo.
func (s *LearnifyService) Learnify(ctx context.Context, input domain.LearnifyInput) (domain.AIResponse, error) {
	prompt := buildLearnifyPrompt(input.Mode, input.Text)
	return s.provider.Complete(ctx, domain.AIRequest{
		Task:   "summarize",
		Prompt: prompt,
	})
}
