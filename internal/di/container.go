// Package di provides dependency injection for the Jarvis CLI.
// It contains the service container and factory functions.
package di

import (
	"github.com/jarvis-chat/jarvis-cli/internal/api"
	"github.com/jarvis-chat/jarvis-cli/internal/config"
	"github.com/jarvis-chat/jarvis-cli/internal/service"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// Container holds all service dependencies for the CLI.
// Services are accessed via interfaces to enable mocking in tests.
type Container struct {
	configManager *config.Manager
	apiClient     *api.Client

	authService   iface.AuthService
	chatService   iface.ChatService
	botService    iface.BotService
	promptService iface.PromptService
	userService   iface.UserService
	statusService iface.StatusService
}

// NewContainer creates a new dependency container with default implementations.
// One API client is shared by all services so concurrent calls share the
// same refresh deduplication.
func NewContainer() (*Container, error) {
	configManager, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	apiURL, err := configManager.APIURL()
	if err != nil {
		return nil, err
	}

	apiClient := api.NewClient(apiURL, configManager)

	return &Container{
		configManager: configManager,
		apiClient:     apiClient,
		authService:   service.NewAuthService(configManager, apiClient),
		chatService:   service.NewChatService(apiClient),
		botService:    service.NewBotService(apiClient),
		promptService: service.NewPromptService(apiClient),
		userService:   service.NewUserService(apiClient),
		statusService: service.NewStatusService(configManager),
	}, nil
}

// NewContainerWithServices creates a container with custom service
// implementations. This is useful for testing with mock services.
func NewContainerWithServices(
	authService iface.AuthService,
	chatService iface.ChatService,
	botService iface.BotService,
	promptService iface.PromptService,
	userService iface.UserService,
	statusService iface.StatusService,
) *Container {
	return &Container{
		authService:   authService,
		chatService:   chatService,
		botService:    botService,
		promptService: promptService,
		userService:   userService,
		statusService: statusService,
	}
}

// AuthService returns the authentication service
func (c *Container) AuthService() iface.AuthService {
	return c.authService
}

// ChatService returns the chat service
func (c *Container) ChatService() iface.ChatService {
	return c.chatService
}

// BotService returns the bot service
func (c *Container) BotService() iface.BotService {
	return c.botService
}

// PromptService returns the prompt service
func (c *Container) PromptService() iface.PromptService {
	return c.promptService
}

// UserService returns the user service
func (c *Container) UserService() iface.UserService {
	return c.userService
}

// StatusService returns the status service
func (c *Container) StatusService() iface.StatusService {
	return c.statusService
}

// ConfigManager returns the config manager
func (c *Container) ConfigManager() *config.Manager {
	return c.configManager
}

// APIClient returns the shared API client
func (c *Container) APIClient() *api.Client {
	return c.apiClient
}
