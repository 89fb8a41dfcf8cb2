// Package dto defines the HTTP request and response shapes for the chat API.
package dto

// ChatMessage is one conversation turn sent by the client.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Stream   bool          `json:"stream"`
}

// ChatResponse is the non-streaming response body.
type ChatResponse struct {
	Response string `json:"response"`
}
