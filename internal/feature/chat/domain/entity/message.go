// Package entity defines the domain models for the chat feature.
package entity

// Roles a chat message can carry. System messages from the client are
// dropped; the service owns the system prompt.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string
	Content string
}
