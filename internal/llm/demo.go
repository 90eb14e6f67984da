package llm

import (
	"context"

	"zoxnova/internal/domain"
)

// DemoOutput es la respuesta fija que devuelve el servicio sin credencial.
const DemoOutput = "This is a demo response. Provide EMERGENT_API_KEY to enable real AI."

// DemoProvider responde de forma determinista y sin I/O; permite correr y
// probar el servicio en ambientes sin credencial del proveedor.
type DemoProvider struct {
	model string
}

func NewDemoProvider(model string) *DemoProvider {
	return &DemoProvider{model: model}
}

func (p *DemoProvider) Complete(_ context.Context, _ domain.AIRequest) (domain.AIResponse, error) {
	return domain.AIResponse{
		Output: DemoOutput,
		Meta: map[string]any{
			"model": p.model,
			"demo":  true,
		},
	}, nil
}
