// Package gemini provides the chat model backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"finos_backend/internal/feature/chat/domain/entity"
	"finos_backend/internal/feature/chat/usecase"
)

const (
	// DefaultModel is the Gemini model used for chat completions.
	DefaultModel = "gemini-2.5-flash"
)

// Client generates chat responses with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Compile-time check that Client implements ChatModel.
var _ usecase.ChatModel = (*Client)(nil)

// NewClient creates a Client using Application Default Credentials.
// Requires GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION, or GEMINI_API_KEY.
func NewClient(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client, model: DefaultModel}, nil
}

// Generate returns the complete model response for the conversation.
func (c *Client) Generate(ctx context.Context, system string, messages []entity.Message) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, toContents(messages), generateConfig(system))
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}

// GenerateStream forwards response chunks to emit as they arrive.
func (c *Client) GenerateStream(ctx context.Context, system string, messages []entity.Message, emit func(chunk string) error) error {
	for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, toContents(messages), generateConfig(system)) {
		if err != nil {
			return fmt.Errorf("gemini API stream failed: %w", err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
	return nil
}

func generateConfig(system string) *genai.GenerateContentConfig {
	if system == "" {
		return nil
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
}

// toContents maps conversation turns onto the Gemini role model.
// Assistant turns become model turns; client-supplied system turns are
// dropped because the service owns the system instruction.
func toContents(messages []entity.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		case entity.RoleSystem:
			continue
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents
}
