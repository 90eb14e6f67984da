package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler responde el ping básico del servicio.
type HealthHandler struct {
	serviceName string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// Test maneja GET /test.
func (h *HealthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.serviceName})
}
