package llm

import (
	"context"

	"zoxnova/internal/domain"
)

// MockProvider permite tests sin llamar a un proveedor real.
type MockProvider struct {
	Response domain.AIResponse
	Err      error

	Calls   int
	LastReq domain.AIRequest
}

func (m *MockProvider) Complete(_ context.Context, req domain.AIRequest) (domain.AIResponse, error) {
	m.Calls++
	m.LastReq = req
	return m.Response, m.Err
}
