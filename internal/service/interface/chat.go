package iface

import (
	"context"
	"time"
)

// Conversation represents a chat conversation summary
type Conversation struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

// Message is one query/answer exchange within a conversation
type Message struct {
	Query     string
	Answer    string
	CreatedAt time.Time
}

// SendMessageInput represents the input for sending a chat message
type SendMessageInput struct {
	// ConversationID is empty when starting a new conversation
	ConversationID string
	Content        string
	AssistantID    string
	AssistantModel string
}

// SendMessageOutput represents the result of sending a chat message
type SendMessageOutput struct {
	ConversationID string
	Answer         string
	RemainingUsage int
}

// ChatService defines the interface for conversation operations
type ChatService interface {
	// ListConversations returns the user's conversations, optionally
	// filtered by assistant
	ListConversations(ctx context.Context, assistantID string) ([]Conversation, error)

	// GetMessages returns the message history of a conversation
	GetMessages(ctx context.Context, conversationID string) ([]Message, error)

	// SendMessage sends a message, creating a conversation when the
	// input carries no conversation ID
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// DeleteConversation deletes a conversation by ID
	DeleteConversation(ctx context.Context, conversationID string) error
}
