package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finos_backend/internal/feature/chat/domain/entity"
)

type mockChatUsecase struct {
	chatFn       func(ctx context.Context, messages []entity.Message) (string, error)
	chatStreamFn func(ctx context.Context, messages []entity.Message, emit func(chunk string) error) error
}

func (m *mockChatUsecase) Chat(ctx context.Context, messages []entity.Message) (string, error) {
	return m.chatFn(ctx, messages)
}

func (m *mockChatUsecase) ChatStream(ctx context.Context, messages []entity.Message, emit func(chunk string) error) error {
	return m.chatStreamFn(ctx, messages, emit)
}

func setupRouter(u ChatUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(u)
	r.POST("/api/chat", h.Chat)
	return r
}

func TestChatHandler_Chat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		usecase    *mockChatUsecase
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns model response",
			body: `{"messages":[{"role":"user","content":"outlook for IT stocks?"}]}`,
			usecase: &mockChatUsecase{
				chatFn: func(_ context.Context, messages []entity.Message) (string, error) {
					if len(messages) != 1 || messages[0].Content != "outlook for IT stocks?" {
						return "", errors.New("unexpected messages")
					}
					return "cautiously optimistic", nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"response":"cautiously optimistic"}`,
		},
		{
			name:       "missing messages returns 400",
			body:       `{"messages":[]}`,
			usecase:    &mockChatUsecase{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"messages are required"}`,
		},
		{
			name:       "message without content returns 400",
			body:       `{"messages":[{"role":"user"}]}`,
			usecase:    &mockChatUsecase{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"messages are required"}`,
		},
		{
			name: "usecase error returns 502",
			body: `{"messages":[{"role":"user","content":"hi"}]}`,
			usecase: &mockChatUsecase{
				chatFn: func(context.Context, []entity.Message) (string, error) {
					return "", errors.New("gemini API request failed")
				},
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"chat service unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.usecase)

			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestChatHandler_Stream(t *testing.T) {
	u := &mockChatUsecase{
		chatStreamFn: func(_ context.Context, _ []entity.Message, emit func(string) error) error {
			for _, chunk := range []string{"markets ", "look ", "steady"} {
				if err := emit(chunk); err != nil {
					return err
				}
			}
			return nil
		},
	}
	r := setupRouter(u)

	body := `{"messages":[{"role":"user","content":"hi"}],"stream":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "markets look steady", w.Body.String())
}

func TestChatHandler_StreamErrorAfterFirstChunk(t *testing.T) {
	u := &mockChatUsecase{
		chatStreamFn: func(_ context.Context, _ []entity.Message, emit func(string) error) error {
			if err := emit("partial"); err != nil {
				return err
			}
			return errors.New("stream cut")
		},
	}
	r := setupRouter(u)

	body := `{"messages":[{"role":"user","content":"hi"}],"stream":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The status was committed before the failure; the client just gets
	// a truncated body.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}
