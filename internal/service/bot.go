package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// botService implements iface.BotService
type botService struct {
	client *api.Client
}

// NewBotService creates a new bot service
func NewBotService(client *api.Client) iface.BotService {
	return &botService{client: client}
}

// ListBots returns the user's bots, optionally filtered by query
func (s *botService) ListBots(ctx context.Context, query string) ([]iface.Bot, error) {
	resp, err := s.client.GetBots(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bots: %w", err)
	}

	result := make([]iface.Bot, len(resp.Items))
	for i, bot := range resp.Items {
		result[i] = convertBot(&bot)
	}

	return result, nil
}

// GetBot returns a bot by ID
func (s *botService) GetBot(ctx context.Context, id string) (*iface.Bot, error) {
	bot, err := s.client.GetBot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot: %w", err)
	}

	converted := convertBot(bot)
	return &converted, nil
}

// CreateBot creates a new bot
func (s *botService) CreateBot(ctx context.Context, input *iface.CreateBotInput) (*iface.Bot, error) {
	bot, err := s.client.CreateBot(ctx, &api.CreateBotRequest{
		Name:         input.Name,
		Description:  input.Description,
		Instructions: input.Instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	converted := convertBot(bot)
	return &converted, nil
}

// UpdateBot updates a bot by ID
func (s *botService) UpdateBot(ctx context.Context, id string, input *iface.UpdateBotInput) (*iface.Bot, error) {
	bot, err := s.client.UpdateBot(ctx, id, &api.UpdateBotRequest{
		Name:         input.Name,
		Description:  input.Description,
		Instructions: input.Instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update bot: %w", err)
	}

	converted := convertBot(bot)
	return &converted, nil
}

// DeleteBot deletes a bot by ID
func (s *botService) DeleteBot(ctx context.Context, id string) error {
	if err := s.client.DeleteBot(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bot: %w", err)
	}
	return nil
}

// AskBot sends a preview message to a bot and returns its answer
func (s *botService) AskBot(ctx context.Context, id, message string) (string, error) {
	resp, err := s.client.AskBot(ctx, id, &api.AskBotRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to ask bot: %w", err)
	}
	return resp.Content, nil
}

func convertBot(bot *api.Bot) iface.Bot {
	return iface.Bot{
		ID:           bot.ID,
		Name:         bot.Name,
		Description:  bot.Description,
		Instructions: bot.Instructions,
		CreatedAt:    time.Unix(bot.CreatedAt, 0),
		UpdatedAt:    time.Unix(bot.UpdatedAt, 0),
	}
}
