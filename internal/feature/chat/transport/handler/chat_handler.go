// Package handler provides the HTTP handlers for the chat feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finos_backend/internal/api"
	"finos_backend/internal/feature/chat/domain/entity"
	"finos_backend/internal/feature/chat/transport/http/dto"
)

// ChatUsecase defines the chat operations required by the handler.
type ChatUsecase interface {
	Chat(ctx context.Context, messages []entity.Message) (string, error)
	ChatStream(ctx context.Context, messages []entity.Message, emit func(chunk string) error) error
}

// ChatHandler handles POST /api/chat.
type ChatHandler struct {
	usecase ChatUsecase
}

func NewChatHandler(usecase ChatUsecase) *ChatHandler {
	return &ChatHandler{usecase: usecase}
}

// Chat answers the conversation, either as a single JSON response or as
// a chunked text/plain stream when the client sets "stream": true.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "messages are required"})
		return
	}

	messages := make([]entity.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, entity.Message{Role: m.Role, Content: m.Content})
	}

	if req.Stream {
		h.stream(c, messages)
		return
	}

	reply, err := h.usecase.Chat(c.Request.Context(), messages)
	if err != nil {
		slog.Error("chat request failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "chat service unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}

func (h *ChatHandler) stream(c *gin.Context, messages []entity.Message) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Status(http.StatusOK)

	err := h.usecase.ChatStream(c.Request.Context(), messages, func(chunk string) error {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// Headers are already sent, so the best we can do is log and cut
		// the stream short.
		slog.Error("chat stream failed", "error", err)
	}
}
