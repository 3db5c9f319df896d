package api

import (
	"context"
	"fmt"
	"net/url"
)

// Bot represents a user-defined assistant
type Bot struct {
	ID           string `json:"id"`
	Name         string `json:"assistantName"`
	Description  string `json:"description,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

// BotsResponse represents the response from the bots list endpoint
type BotsResponse struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int   `json:"total"`
	HasNext bool  `json:"hasNext"`
	Items   []Bot `json:"items"`
}

// CreateBotRequest represents the request body for creating a bot
type CreateBotRequest struct {
	Name         string `json:"assistantName"`
	Description  string `json:"description,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// UpdateBotRequest represents the request body for updating a bot.
// Empty fields are left unchanged by the server.
type UpdateBotRequest struct {
	Name         string `json:"assistantName,omitempty"`
	Description  string `json:"description,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// AskBotRequest represents the request body for a preview chat with a bot
type AskBotRequest struct {
	Message string `json:"message"`
}

// AskBotResponse represents the bot's answer to a preview message
type AskBotResponse struct {
	Content string `json:"content"`
}

// GetBots fetches the bot list
func (c *Client) GetBots(ctx context.Context, query string) (*BotsResponse, error) {
	path := "/api/v1/bots"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var resp BotsResponse
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBot fetches a bot by ID
func (c *Client) GetBot(ctx context.Context, botID string) (*Bot, error) {
	var bot Bot
	if err := c.Get(ctx, fmt.Sprintf("/api/v1/bots/%s", url.PathEscape(botID)), &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// CreateBot creates a new bot
func (c *Client) CreateBot(ctx context.Context, req *CreateBotRequest) (*Bot, error) {
	var bot Bot
	if err := c.Post(ctx, "/api/v1/bots", req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// UpdateBot updates a bot by ID
func (c *Client) UpdateBot(ctx context.Context, botID string, req *UpdateBotRequest) (*Bot, error) {
	var bot Bot
	if err := c.Patch(ctx, fmt.Sprintf("/api/v1/bots/%s", url.PathEscape(botID)), req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// DeleteBot deletes a bot by ID
func (c *Client) DeleteBot(ctx context.Context, botID string) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/bots/%s", url.PathEscape(botID)), nil)
}

// AskBot sends a preview message to a bot and returns its answer
func (c *Client) AskBot(ctx context.Context, botID string, req *AskBotRequest) (*AskBotResponse, error) {
	var resp AskBotResponse
	path := fmt.Sprintf("/api/v1/bots/%s/ask", url.PathEscape(botID))
	if err := c.Post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
