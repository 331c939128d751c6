package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperqa/src/core/docqa"
)

type Handler struct {
	chatService docqa.ChatService
	sysService  docqa.SystemService
}

func NewHandler(chatService docqa.ChatService, sysService docqa.SystemService) *Handler {
	return &Handler{
		chatService: chatService,
		sysService:  sysService,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Chat routes
	v1.POST("/ask", h.Ask)
	v1.GET("/chat/history", h.GetChatHistory)

	// System routes
	v1.GET("/health", h.CheckHealth)
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, status int, err error) {
	var code string
	message := err.Error()
	switch {
	case errors.Is(err, docqa.ErrEmptyQuestion):
		code = "EMPTY_QUESTION"
		status = http.StatusBadRequest
	case errors.Is(err, docqa.ErrIndexNotReady):
		code = "INDEX_NOT_READY"
		status = http.StatusServiceUnavailable
	case errors.Is(err, docqa.ErrGenerationFailed):
		code = "GENERATION_FAILED"
		status = http.StatusBadGateway
		message = "could not generate an answer, please try again"
	case status != 0 && status != http.StatusInternalServerError:
		code = "BAD_REQUEST"
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
