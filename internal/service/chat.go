package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// DefaultAssistant is used when a chat message names no assistant
var DefaultAssistant = api.Assistant{
	ID:    "gpt-4o-mini",
	Model: "dify",
	Name:  "GPT-4o mini",
}

// chatService implements iface.ChatService
type chatService struct {
	client *api.Client
}

// NewChatService creates a new chat service
func NewChatService(client *api.Client) iface.ChatService {
	return &chatService{client: client}
}

// ListConversations returns the user's conversations
func (s *chatService) ListConversations(ctx context.Context, assistantID string) ([]iface.Conversation, error) {
	resp, err := s.client.GetConversations(ctx, assistantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	result := make([]iface.Conversation, len(resp.Items))
	for i, conv := range resp.Items {
		result[i] = iface.Conversation{
			ID:        conv.ID,
			Title:     conv.Title,
			CreatedAt: time.Unix(conv.CreatedAt, 0),
		}
	}

	return result, nil
}

// GetMessages returns the message history of a conversation
func (s *chatService) GetMessages(ctx context.Context, conversationID string) ([]iface.Message, error) {
	resp, err := s.client.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	result := make([]iface.Message, len(resp.Items))
	for i, msg := range resp.Items {
		result[i] = iface.Message{
			Query:     msg.Query,
			Answer:    msg.Answer,
			CreatedAt: time.Unix(msg.CreatedAt, 0),
		}
	}

	return result, nil
}

// SendMessage sends a message, creating a conversation when the input
// carries no conversation ID
func (s *chatService) SendMessage(ctx context.Context, input *iface.SendMessageInput) (*iface.SendMessageOutput, error) {
	assistant := DefaultAssistant
	if input.AssistantID != "" {
		assistant = api.Assistant{
			ID:    input.AssistantID,
			Model: input.AssistantModel,
		}
		if assistant.Model == "" {
			assistant.Model = DefaultAssistant.Model
		}
	}

	resp, err := s.client.SendMessage(ctx, &api.SendMessageRequest{
		Content:        input.Content,
		ConversationID: input.ConversationID,
		Assistant:      assistant,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &iface.SendMessageOutput{
		ConversationID: resp.ConversationID,
		Answer:         resp.Message,
		RemainingUsage: resp.RemainingUsage,
	}, nil
}

// DeleteConversation deletes a conversation by ID
func (s *chatService) DeleteConversation(ctx context.Context, conversationID string) error {
	if err := s.client.DeleteConversation(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
