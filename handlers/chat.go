package handlers

import (
	"net/http"

	"seatwise/models"
	"seatwise/services/assistant"
	"seatwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the extraction and dialogue engine over HTTP.
type ChatHandler struct {
	Assistant assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

// HandleChat processes a single chat turn. Malformed bodies and engine
// failures both collapse to a 500 with the fixed fallback reply; the widget
// shows it like any other assistant message, so no structured error code is
// exposed.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{Message: utils.FallbackReply})
		return
	}

	resp, err := h.Assistant.Reply(req)
	if err != nil {
		logger.Error("Failed to process chat request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{Message: utils.FallbackReply})
		return
	}

	c.JSON(http.StatusOK, resp)
}
