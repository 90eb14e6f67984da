package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoxnova/internal/domain"
	"zoxnova/internal/store"
)

// chatCollection es la colección fija donde se guardan las sesiones.
const chatCollection = "chat"

const defaultListLimit = 50

// ChatHandler mantiene dependencias para los endpoints de chats guardados.
type ChatHandler struct {
	logger *zap.Logger
	store  store.DocumentStore
}

func NewChatHandler(logger *zap.Logger, docStore store.DocumentStore) *ChatHandler {
	return &ChatHandler{logger: logger, store: docStore}
}

// SaveChat maneja POST /chats/save.
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var req domain.ChatSession
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid save chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	doc := store.Document{
		"title":    req.Title,
		"messages": req.Messages,
	}
	if req.Meta != nil {
		doc["meta"] = req.Meta
	}

	created, err := h.store.Create(c.Request.Context(), chatCollection, doc)
	if err != nil {
		h.logger.Error("save chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "chat": created})
}

// ListChats maneja GET /chats.
func (h *ChatHandler) ListChats(c *gin.Context) {
	limit := int64(defaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("invalid list chats limit", zap.String("limit", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		limit = parsed
	}

	items, err := h.store.List(c.Request.Context(), chatCollection, store.Document{}, limit)
	if err != nil {
		h.logger.Error("list chats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list chats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
