package api

import (
	"context"
	"fmt"
	"net/url"
)

// Conversation represents a chat conversation summary
type Conversation struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
}

// ConversationsResponse represents the response from the conversations endpoint
type ConversationsResponse struct {
	Cursor  string         `json:"cursor"`
	HasMore bool           `json:"has_more"`
	Items   []Conversation `json:"items"`
}

// ConversationMessage is one query/answer exchange within a conversation
type ConversationMessage struct {
	Query     string `json:"query"`
	Answer    string `json:"answer"`
	CreatedAt int64  `json:"createdAt"`
}

// MessagesResponse represents the response from the conversation messages endpoint
type MessagesResponse struct {
	Cursor string                `json:"cursor"`
	Items  []ConversationMessage `json:"items"`
}

// Assistant identifies the model answering a chat message
type Assistant struct {
	ID    string `json:"assistantId"`
	Model string `json:"model"`
	Name  string `json:"assistantName,omitempty"`
}

// SendMessageRequest represents the request body for sending a chat message
type SendMessageRequest struct {
	Content        string    `json:"content"`
	ConversationID string    `json:"conversationId,omitempty"`
	Assistant      Assistant `json:"assistant"`
}

// SendMessageResponse represents the response to a sent chat message
type SendMessageResponse struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	RemainingUsage int    `json:"remainingUsage"`
}

// GetConversations fetches the conversation list, optionally filtered by assistant
func (c *Client) GetConversations(ctx context.Context, assistantID string) (*ConversationsResponse, error) {
	path := "/api/v1/ai-chat/conversations"
	if assistantID != "" {
		path += "?assistantId=" + url.QueryEscape(assistantID)
	}

	var resp ConversationsResponse
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMessages fetches the message history of a conversation
func (c *Client) GetMessages(ctx context.Context, conversationID string) (*MessagesResponse, error) {
	path := fmt.Sprintf("/api/v1/ai-chat/conversations/%s/messages", url.PathEscape(conversationID))

	var resp MessagesResponse
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendMessage sends a chat message. A new conversation is created when the
// request carries no conversation ID.
func (c *Client) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, error) {
	var resp SendMessageResponse
	if err := c.Post(ctx, "/api/v1/ai-chat/messages", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteConversation deletes a conversation by ID
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	path := fmt.Sprintf("/api/v1/ai-chat/conversations/%s", url.PathEscape(conversationID))
	return c.Delete(ctx, path, nil)
}
