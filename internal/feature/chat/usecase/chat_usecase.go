// Package usecase implements the chat business logic.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"finos_backend/internal/feature/chat/domain/entity"
)

// ChatModel generates model responses for a conversation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ChatModel interface {
	Generate(ctx context.Context, system string, messages []entity.Message) (string, error)
	GenerateStream(ctx context.Context, system string, messages []entity.Message, emit func(chunk string) error) error
}

// ContextProvider supplies the current market snapshot line that is
// embedded into the system prompt.
type ContextProvider interface {
	MarketContext(ctx context.Context) (string, error)
}

const systemPromptFormat = `You are the Chief Investment Officer of a wealth advisory desk serving Indian retail investors.
Current market snapshot: %s
Answer questions about markets, stocks and portfolio strategy. Be concise and practical.
Never promise returns. Flag speculation as speculation.`

// ChatUsecase builds the advisor prompt and delegates to the model.
type ChatUsecase struct {
	model   ChatModel
	context ContextProvider
}

func NewChatUsecase(model ChatModel, contextProvider ContextProvider) *ChatUsecase {
	return &ChatUsecase{model: model, context: contextProvider}
}

// Chat returns the full model response for the conversation.
func (u *ChatUsecase) Chat(ctx context.Context, messages []entity.Message) (string, error) {
	reply, err := u.model.Generate(ctx, u.systemPrompt(ctx), messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat response: %w", err)
	}
	return reply, nil
}

// ChatStream emits the model response incrementally through emit.
// Emit errors abort the stream and are returned to the caller.
func (u *ChatUsecase) ChatStream(ctx context.Context, messages []entity.Message, emit func(chunk string) error) error {
	if err := u.model.GenerateStream(ctx, u.systemPrompt(ctx), messages, emit); err != nil {
		return fmt.Errorf("failed to stream chat response: %w", err)
	}
	return nil
}

// systemPrompt embeds the market context into the advisor persona.
// A context failure degrades the prompt, not the request.
func (u *ChatUsecase) systemPrompt(ctx context.Context) string {
	snapshot, err := u.context.MarketContext(ctx)
	if err != nil {
		slog.Warn("failed to build market context for chat prompt", "error", err)
		snapshot = "unavailable"
	}
	return fmt.Sprintf(systemPromptFormat, snapshot)
}
