package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Prompt represents a saved prompt template
type Prompt struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsPublic    bool   `json:"isPublic"`
	IsFavorite  bool   `json:"isFavorite"`
}

// PromptsResponse represents the response from the prompts list endpoint
type PromptsResponse struct {
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
	HasNext bool     `json:"hasNext"`
	Items   []Prompt `json:"items"`
}

// ListPromptsQuery holds the filters for the prompts list endpoint
type ListPromptsQuery struct {
	Query    string
	Category string
	IsPublic *bool
	Offset   int
	Limit    int
}

// CreatePromptRequest represents the request body for creating a prompt
type CreatePromptRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdatePromptRequest represents the request body for updating a prompt
type UpdatePromptRequest struct {
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// GetPrompts fetches prompts matching the query
func (c *Client) GetPrompts(ctx context.Context, q *ListPromptsQuery) (*PromptsResponse, error) {
	params := url.Values{}
	if q != nil {
		if q.Query != "" {
			params.Set("query", q.Query)
		}
		if q.Category != "" {
			params.Set("category", q.Category)
		}
		if q.IsPublic != nil {
			params.Set("isPublic", strconv.FormatBool(*q.IsPublic))
		}
		if q.Offset > 0 {
			params.Set("offset", strconv.Itoa(q.Offset))
		}
		if q.Limit > 0 {
			params.Set("limit", strconv.Itoa(q.Limit))
		}
	}

	path := "/api/v1/prompts"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp PromptsResponse
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePrompt creates a new prompt
func (c *Client) CreatePrompt(ctx context.Context, req *CreatePromptRequest) (*Prompt, error) {
	var prompt Prompt
	if err := c.Post(ctx, "/api/v1/prompts", req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// UpdatePrompt updates a prompt by ID
func (c *Client) UpdatePrompt(ctx context.Context, promptID string, req *UpdatePromptRequest) (*Prompt, error) {
	var prompt Prompt
	if err := c.Patch(ctx, fmt.Sprintf("/api/v1/prompts/%s", url.PathEscape(promptID)), req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// DeletePrompt deletes a prompt by ID
func (c *Client) DeletePrompt(ctx context.Context, promptID string) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v1/prompts/%s", url.PathEscape(promptID)), nil)
}

// FavoritePrompt marks a prompt as a favorite
func (c *Client) FavoritePrompt(ctx context.Context, promptID string) error {
	path := fmt.Sprintf("/api/v1/prompts/%s/favorite", url.PathEscape(promptID))
	return c.Post(ctx, path, nil, nil)
}

// UnfavoritePrompt removes a prompt from favorites
func (c *Client) UnfavoritePrompt(ctx context.Context, promptID string) error {
	path := fmt.Sprintf("/api/v1/prompts/%s/favorite", url.PathEscape(promptID))
	return c.Delete(ctx, path, nil)
}
