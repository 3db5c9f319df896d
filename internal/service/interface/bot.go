package iface

import (
	"context"
	"time"
)

// Bot represents a user-defined assistant
type Bot struct {
	ID           string
	Name         string
	Description  string
	Instructions string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateBotInput represents the input for creating a bot
type CreateBotInput struct {
	Name         string
	Description  string
	Instructions string
}

// UpdateBotInput represents the input for updating a bot.
// Empty fields are left unchanged.
type UpdateBotInput struct {
	Name         string
	Description  string
	Instructions string
}

// BotService defines the interface for bot management operations
type BotService interface {
	// ListBots returns the user's bots, optionally filtered by query
	ListBots(ctx context.Context, query string) ([]Bot, error)

	// GetBot returns a bot by ID
	GetBot(ctx context.Context, id string) (*Bot, error)

	// CreateBot creates a new bot
	CreateBot(ctx context.Context, input *CreateBotInput) (*Bot, error)

	// UpdateBot updates a bot by ID
	UpdateBot(ctx context.Context, id string, input *UpdateBotInput) (*Bot, error)

	// DeleteBot deletes a bot by ID
	DeleteBot(ctx context.Context, id string) error

	// AskBot sends a preview message to a bot and returns its answer
	AskBot(ctx context.Context, id, message string) (string, error)
}
