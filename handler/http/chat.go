package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type askRequest struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"sessionId"`
}

// Ask godoc
// @Summary Ask a question about the loaded document
// @Tags chat
// @Accept json
// @Produce json
// @Param body body askRequest true "Question parameters"
// @Success 200 {object} docqa.Answer
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /ask [post]
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.SessionID, req.Question)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, answer)
}

// GetChatHistory godoc
// @Summary Get chat history
// @Tags chat
// @Param sessionId query string true "Chat session ID"
// @Produce json
// @Success 200 {array} docqa.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /chat/history [get]
func (h *Handler) GetChatHistory(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sendError(c, http.StatusBadRequest, fmt.Errorf("sessionId is required"))
		return
	}

	history, err := h.chatService.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}

	sendJSON(c, http.StatusOK, history)
}
