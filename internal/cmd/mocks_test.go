package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/jarvis-chat/jarvis-cli/internal/di"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// MockAuthService is a mock implementation of iface.AuthService
type MockAuthService struct {
	LoginFunc              func(ctx context.Context, email, password string) error
	LoginWithBrowserFunc   func(ctx context.Context) error
	SignupFunc             func(ctx context.Context, email, password, username string) error
	LogoutFunc             func(ctx context.Context) error
	IsLoggedInFunc         func() bool
	ResendVerificationFunc func(ctx context.Context, email string) error
	SessionInfoFunc        func() (*iface.SessionInfo, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) LoginWithBrowser(ctx context.Context) error {
	if m.LoginWithBrowserFunc != nil {
		return m.LoginWithBrowserFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) Signup(ctx context.Context, email, password, username string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password, username)
	}
	return nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) IsLoggedIn() bool {
	if m.IsLoggedInFunc != nil {
		return m.IsLoggedInFunc()
	}
	return true
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) SessionInfo() (*iface.SessionInfo, error) {
	if m.SessionInfoFunc != nil {
		return m.SessionInfoFunc()
	}
	return &iface.SessionInfo{UserID: "user-1"}, nil
}

// MockChatService is a mock implementation of iface.ChatService
type MockChatService struct {
	ListConversationsFunc  func(ctx context.Context, assistantID string) ([]iface.Conversation, error)
	GetMessagesFunc        func(ctx context.Context, conversationID string) ([]iface.Message, error)
	SendMessageFunc        func(ctx context.Context, input *iface.SendMessageInput) (*iface.SendMessageOutput, error)
	DeleteConversationFunc func(ctx context.Context, conversationID string) error
}

func (m *MockChatService) ListConversations(ctx context.Context, assistantID string) ([]iface.Conversation, error) {
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, assistantID)
	}
	return nil, nil
}

func (m *MockChatService) GetMessages(ctx context.Context, conversationID string) ([]iface.Message, error) {
	if m.GetMessagesFunc != nil {
		return m.GetMessagesFunc(ctx, conversationID)
	}
	return nil, nil
}

func (m *MockChatService) SendMessage(ctx context.Context, input *iface.SendMessageInput) (*iface.SendMessageOutput, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, input)
	}
	return &iface.SendMessageOutput{ConversationID: "conv-new", Answer: "ok"}, nil
}

func (m *MockChatService) DeleteConversation(ctx context.Context, conversationID string) error {
	if m.DeleteConversationFunc != nil {
		return m.DeleteConversationFunc(ctx, conversationID)
	}
	return nil
}

// MockBotService is a mock implementation of iface.BotService
type MockBotService struct {
	ListBotsFunc  func(ctx context.Context, query string) ([]iface.Bot, error)
	GetBotFunc    func(ctx context.Context, id string) (*iface.Bot, error)
	CreateBotFunc func(ctx context.Context, input *iface.CreateBotInput) (*iface.Bot, error)
	UpdateBotFunc func(ctx context.Context, id string, input *iface.UpdateBotInput) (*iface.Bot, error)
	DeleteBotFunc func(ctx context.Context, id string) error
	AskBotFunc    func(ctx context.Context, id, message string) (string, error)
}

func (m *MockBotService) ListBots(ctx context.Context, query string) ([]iface.Bot, error) {
	if m.ListBotsFunc != nil {
		return m.ListBotsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockBotService) GetBot(ctx context.Context, id string) (*iface.Bot, error) {
	if m.GetBotFunc != nil {
		return m.GetBotFunc(ctx, id)
	}
	return &iface.Bot{ID: id, Name: "Test Bot"}, nil
}

func (m *MockBotService) CreateBot(ctx context.Context, input *iface.CreateBotInput) (*iface.Bot, error) {
	if m.CreateBotFunc != nil {
		return m.CreateBotFunc(ctx, input)
	}
	return &iface.Bot{ID: "bot-new", Name: input.Name}, nil
}

func (m *MockBotService) UpdateBot(ctx context.Context, id string, input *iface.UpdateBotInput) (*iface.Bot, error) {
	if m.UpdateBotFunc != nil {
		return m.UpdateBotFunc(ctx, id, input)
	}
	return &iface.Bot{ID: id, Name: input.Name}, nil
}

func (m *MockBotService) DeleteBot(ctx context.Context, id string) error {
	if m.DeleteBotFunc != nil {
		return m.DeleteBotFunc(ctx, id)
	}
	return nil
}

func (m *MockBotService) AskBot(ctx context.Context, id, message string) (string, error) {
	if m.AskBotFunc != nil {
		return m.AskBotFunc(ctx, id, message)
	}
	return "answer", nil
}

// MockPromptService is a mock implementation of iface.PromptService
type MockPromptService struct {
	ListPromptsFunc      func(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error)
	CreatePromptFunc     func(ctx context.Context, input *iface.CreatePromptInput) (*iface.Prompt, error)
	UpdatePromptFunc     func(ctx context.Context, id string, input *iface.UpdatePromptInput) (*iface.Prompt, error)
	DeletePromptFunc     func(ctx context.Context, id string) error
	FavoritePromptFunc   func(ctx context.Context, id string) error
	UnfavoritePromptFunc func(ctx context.Context, id string) error
}

func (m *MockPromptService) ListPrompts(ctx context.Context, input *iface.ListPromptsInput) ([]iface.Prompt, error) {
	if m.ListPromptsFunc != nil {
		return m.ListPromptsFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockPromptService) CreatePrompt(ctx context.Context, input *iface.CreatePromptInput) (*iface.Prompt, error) {
	if m.CreatePromptFunc != nil {
		return m.CreatePromptFunc(ctx, input)
	}
	return &iface.Prompt{ID: "prompt-new", Title: input.Title}, nil
}

func (m *MockPromptService) UpdatePrompt(ctx context.Context, id string, input *iface.UpdatePromptInput) (*iface.Prompt, error) {
	if m.UpdatePromptFunc != nil {
		return m.UpdatePromptFunc(ctx, id, input)
	}
	return &iface.Prompt{ID: id, Title: input.Title}, nil
}

func (m *MockPromptService) DeletePrompt(ctx context.Context, id string) error {
	if m.DeletePromptFunc != nil {
		return m.DeletePromptFunc(ctx, id)
	}
	return nil
}

func (m *MockPromptService) FavoritePrompt(ctx context.Context, id string) error {
	if m.FavoritePromptFunc != nil {
		return m.FavoritePromptFunc(ctx, id)
	}
	return nil
}

func (m *MockPromptService) UnfavoritePrompt(ctx context.Context, id string) error {
	if m.UnfavoritePromptFunc != nil {
		return m.UnfavoritePromptFunc(ctx, id)
	}
	return nil
}

// MockUserService is a mock implementation of iface.UserService
type MockUserService struct {
	CurrentUserFunc func(ctx context.Context) (*iface.Profile, error)
	UsageFunc       func(ctx context.Context) (*iface.Usage, error)
}

func (m *MockUserService) CurrentUser(ctx context.Context) (*iface.Profile, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &iface.Profile{ID: "user-1", Email: "me@example.com", Username: "me"}, nil
}

func (m *MockUserService) Usage(ctx context.Context) (*iface.Usage, error) {
	if m.UsageFunc != nil {
		return m.UsageFunc(ctx)
	}
	return &iface.Usage{AvailableTokens: 10, TotalTokens: 50}, nil
}

// MockStatusService is a mock implementation of iface.StatusService
type MockStatusService struct {
	CheckFunc func(ctx context.Context) (*iface.Status, error)
}

func (m *MockStatusService) Check(ctx context.Context) (*iface.Status, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	return &iface.Status{APIReachable: true, LoggedIn: true}, nil
}

// testContainer builds a DI container from mocks, filling in defaults for
// any nil service
func testContainer(auth *MockAuthService, chat *MockChatService, bot *MockBotService, prompt *MockPromptService, user *MockUserService, status *MockStatusService) *di.Container {
	if auth == nil {
		auth = &MockAuthService{}
	}
	if chat == nil {
		chat = &MockChatService{}
	}
	if bot == nil {
		bot = &MockBotService{}
	}
	if prompt == nil {
		prompt = &MockPromptService{}
	}
	if user == nil {
		user = &MockUserService{}
	}
	if status == nil {
		status = &MockStatusService{}
	}
	return di.NewContainerWithServices(auth, chat, bot, prompt, user, status)
}

// executeCommand runs the CLI with the given args against a container and
// returns the captured stdout
func executeCommand(t *testing.T, container *di.Container, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	root.SetContainer(container)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	root.Command().SetArgs(args)
	err := root.Command().Execute()

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)

	return buf.String(), err
}
