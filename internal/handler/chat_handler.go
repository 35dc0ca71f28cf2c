package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// ChatHandler handles the assistant endpoint.
type ChatHandler struct {
	svc service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatRequest is the latest user message plus prior turns.
type ChatRequest struct {
	Query   string                `json:"query"`
	History []service.ChatMessage `json:"history"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// Query godoc
// @Summary Ask the assistant
// @Tags chatbot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Query and history"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /chatbot/query [post]
func (h *ChatHandler) Query(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	answer, err := h.svc.Query(c.Request().Context(), req.Query, req.History)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ChatResponse{Response: answer})
}
