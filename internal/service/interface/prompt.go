package iface

import "context"

// Prompt represents a saved prompt template
type Prompt struct {
	ID          string
	Title       string
	Content     string
	Description string
	Category    string
	IsPublic    bool
	IsFavorite  bool
}

// ListPromptsInput holds the filters for listing prompts
type ListPromptsInput struct {
	Query    string
	Category string
	// IsPublic filters by visibility when non-nil
	IsPublic *bool
	Offset   int
	Limit    int
}

// CreatePromptInput represents the input for creating a prompt
type CreatePromptInput struct {
	Title       string
	Content     string
	Description string
	Category    string
	IsPublic    bool
}

// UpdatePromptInput represents the input for updating a prompt.
// Empty fields are left unchanged.
type UpdatePromptInput struct {
	Title       string
	Content     string
	Description string
	Category    string
}

// PromptService defines the interface for prompt library operations
type PromptService interface {
	// ListPrompts returns prompts matching the filters
	ListPrompts(ctx context.Context, input *ListPromptsInput) ([]Prompt, error)

	// CreatePrompt creates a new prompt
	CreatePrompt(ctx context.Context, input *CreatePromptInput) (*Prompt, error)

	// UpdatePrompt updates a prompt by ID
	UpdatePrompt(ctx context.Context, id string, input *UpdatePromptInput) (*Prompt, error)

	// DeletePrompt deletes a prompt by ID
	DeletePrompt(ctx context.Context, id string) error

	// FavoritePrompt marks a prompt as a favorite
	FavoritePrompt(ctx context.Context, id string) error

	// UnfavoritePrompt removes a prompt from favorites
	UnfavoritePrompt(ctx context.Context, id string) error
}
