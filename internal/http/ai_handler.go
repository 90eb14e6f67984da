package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoxnova/internal/domain"
	"zoxnova/internal/llm"
)

// AIHandler expone el proxy de completions.
type AIHandler struct {
	logger   *zap.Logger
	provider llm.Provider
}

func NewAIHandler(logger *zap.Logger, provider llm.Provider) *AIHandler {
	return &AIHandler{logger: logger, provider: provider}
}

// Complete maneja POST /ai.
func (h *AIHandler) Complete(c *gin.Context) {
	var req domain.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid ai request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.provider.Complete(c.Request.Context(), req)
	if err != nil {
		respondProviderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondProviderError mapea errores del proveedor: un fallo upstream se
// propaga con su mismo status y body; cualquier otro fallo es un 500 con el
// mensaje como detalle.
func respondProviderError(c *gin.Context, logger *zap.Logger, err error) {
	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		logger.Warn("upstream error", zap.Int("status", upstream.Status))
		c.JSON(upstream.Status, gin.H{"error": upstream.Body})
		return
	}
	logger.Error("provider call failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
