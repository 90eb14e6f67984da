package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoxnova/internal/domain"
	"zoxnova/internal/service"
)

// StudyHandler expone los endpoints derivados learnify y quizify.
type StudyHandler struct {
	logger   *zap.Logger
	learnify *service.LearnifyService
	quizify  *service.QuizifyService
}

func NewStudyHandler(logger *zap.Logger, learnify *service.LearnifyService, quizify *service.QuizifyService) *StudyHandler {
	return &StudyHandler{logger: logger, learnify: learnify, quizify: quizify}
}

// Learnify maneja POST /learnify.
func (h *StudyHandler) Learnify(c *gin.Context) {
	var req domain.LearnifyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid learnify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.learnify.Learnify(c.Request.Context(), req)
	if err != nil {
		respondProviderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Quizify maneja POST /quizify.
func (h *StudyHandler) Quizify(c *gin.Context) {
	var req domain.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quizify request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, placeholder, err := h.quizify.Quizify(c.Request.Context(), req)
	if err != nil {
		respondProviderError(c, h.logger, err)
		return
	}
	if placeholder != nil {
		c.JSON(http.StatusOK, placeholder)
		return
	}

	c.JSON(http.StatusOK, resp)
}
