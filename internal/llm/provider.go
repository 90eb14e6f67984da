package llm

import (
	"context"
	"fmt"

	"zoxnova/internal/domain"
)

// Provider define la interfaz del proxy de completions.
// La variante (demo o HTTP) se elige una sola vez en el arranque.
type Provider interface {
	Complete(ctx context.Context, req domain.AIRequest) (domain.AIResponse, error)
}

// UpstreamError es un fallo reportado por el proveedor (status >= 400).
// Se propaga al caller con el mismo status y body como detalle.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}
