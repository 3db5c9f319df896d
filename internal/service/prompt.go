package service

import (
	"context"
	"fmt"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// promptService implements iface.PromptService
type promptService struct {
	client *api.Client
}

// NewPromptService creates a new prompt service
func NewPromptService(client *api.Client) iface.PromptService {
	return &promptService{client: client}
}

// ListPrompts returns prompts matching the filters
func (s *promptService) ListPrompts(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
	var query *api.ListPromptsQuery
	if input != nil {
		query = &api.ListPromptsQuery{
			Query:    input.Query,
			Category: input.Category,
			IsPublic: input.IsPublic,
			Offset:   input.Offset,
			Limit:    input.Limit,
		}
	}

	resp, err := s.client.GetPrompts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prompts: %w", err)
	}

	result := make([]iface.Prompt, len(resp.Items))
	for i, prompt := range resp.Items {
		result[i] = convertPrompt(&prompt)
	}

	return result, nil
}

// CreatePrompt creates a new prompt
func (s *promptService) CreatePrompt(ctx context.Context, input *iface.CreatePromptInput) (*iface.Prompt, error) {
	prompt, err := s.client.CreatePrompt(ctx, &api.CreatePromptRequest{
		Title:       input.Title,
		Content:     input.Content,
		Description: input.Description,
		Category:    input.Category,
		IsPublic:    input.IsPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}

	converted := convertPrompt(prompt)
	return &converted, nil
}

// UpdatePrompt updates a prompt by ID
func (s *promptService) UpdatePrompt(ctx context.Context, id string, input *iface.UpdatePromptInput) (*iface.Prompt, error) {
	prompt, err := s.client.UpdatePrompt(ctx, id, &api.UpdatePromptRequest{
		Title:       input.Title,
		Content:     input.Content,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}

	converted := convertPrompt(prompt)
	return &converted, nil
}

// DeletePrompt deletes a prompt by ID
func (s *promptService) DeletePrompt(ctx context.Context, id string) error {
	if err := s.client.DeletePrompt(ctx, id); err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	return nil
}

// FavoritePrompt marks a prompt as a favorite
func (s *promptService) FavoritePrompt(ctx context.Context, id string) error {
	if err := s.client.FavoritePrompt(ctx, id); err != nil {
		return fmt.Errorf("failed to favorite prompt: %w", err)
	}
	return nil
}

// UnfavoritePrompt removes a prompt from favorites
func (s *promptService) UnfavoritePrompt(ctx context.Context, id string) error {
	if err := s.client.UnfavoritePrompt(ctx, id); err != nil {
		return fmt.Errorf("failed to unfavorite prompt: %w", err)
	}
	return nil
}

func convertPrompt(prompt *api.Prompt) iface.Prompt {
	return iface.Prompt{
		ID:          prompt.ID,
		Title:       prompt.Title,
		Content:     prompt.Content,
		Description: prompt.Description,
		Category:    prompt.Category,
		IsPublic:    prompt.IsPublic,
		IsFavorite:  prompt.IsFavorite,
	}
}
