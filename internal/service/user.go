package service

import (
	"context"
	"fmt"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// userService implements iface.UserService
type userService struct {
	client *api.Client
}

// NewUserService creates a new user service
func NewUserService(client *api.Client) iface.UserService {
	return &userService{client: client}
}

// CurrentUser returns the signed-in user's profile
func (s *userService) CurrentUser(ctx context.Context) (*iface.Profile, error) {
	user, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &iface.Profile{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Roles:    user.Roles,
	}, nil
}

// Usage returns the remaining token quota
func (s *userService) Usage(ctx context.Context) (*iface.Usage, error) {
	usage, err := s.client.GetUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usage: %w", err)
	}

	return &iface.Usage{
		AvailableTokens: usage.AvailableTokens,
		TotalTokens:     usage.TotalTokens,
		Unlimited:       usage.Unlimited,
	}, nil
}
