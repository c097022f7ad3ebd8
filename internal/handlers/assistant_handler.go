package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/assistant"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
)

type AssistantHandler struct {
	bot *assistant.Assistant
}

func NewAssistantHandler(bot *assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{bot: bot}
}

type AssistantMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *AssistantHandler) Questions(c *gin.Context) {
	httpresp.List(c, h.bot.Questions())
}

func (h *AssistantHandler) Message(c *gin.Context) {
	var req AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "text is required.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question": req.Text,
		"reply":    h.bot.Reply(req.Text),
	})
}
