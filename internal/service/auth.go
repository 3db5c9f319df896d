package service

import (
	"context"
	"fmt"

	"github.com/jarvis-chat/jarvis-cli/internal/api"
	"github.com/jarvis-chat/jarvis-cli/internal/auth"
	"github.com/jarvis-chat/jarvis-cli/internal/config"
	"github.com/jarvis-chat/jarvis-cli/internal/log"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// authService implements iface.AuthService
type authService struct {
	configManager *config.Manager
	client        *api.Client
}

// NewAuthService creates a new authentication service
func NewAuthService(configManager *config.Manager, client *api.Client) iface.AuthService {
	return &authService{
		configManager: configManager,
		client:        client,
	}
}

// Login signs in with email and password and saves credentials
func (s *authService) Login(ctx context.Context, email, password string) error {
	if s.IsLoggedIn() {
		return fmt.Errorf("already logged in. Use 'jarvis logout' first to log out")
	}

	apiURL, err := s.configManager.APIURL()
	if err != nil {
		return fmt.Errorf("failed to get API URL: %w", err)
	}

	tokens, err := auth.NewPasswordFlow(apiURL).SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	return s.saveTokens(tokens)
}

// LoginWithBrowser performs the browser OAuth flow and saves credentials
func (s *authService) LoginWithBrowser(ctx context.Context) error {
	if s.IsLoggedIn() {
		return fmt.Errorf("already logged in. Use 'jarvis logout' first to log out")
	}

	apiURL, err := s.configManager.APIURL()
	if err != nil {
		return fmt.Errorf("failed to get API URL: %w", err)
	}

	tokens, err := auth.NewOAuthFlow(apiURL).Login(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	return s.saveTokens(tokens)
}

// Signup registers a new account and saves credentials
func (s *authService) Signup(ctx context.Context, email, password, username string) error {
	if s.IsLoggedIn() {
		return fmt.Errorf("already logged in. Use 'jarvis logout' first to log out")
	}

	apiURL, err := s.configManager.APIURL()
	if err != nil {
		return fmt.Errorf("failed to get API URL: %w", err)
	}

	tokens, err := auth.NewPasswordFlow(apiURL).SignUp(ctx, email, password, username)
	if err != nil {
		return err
	}

	return s.saveTokens(tokens)
}

// Logout clears stored credentials. The server-side sign-out is best
// effort; local credentials are cleared regardless.
func (s *authService) Logout(ctx context.Context) error {
	cfg, err := s.configManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.AccessToken == "" && cfg.RefreshToken == "" {
		return fmt.Errorf("not logged in")
	}

	if err := s.client.SignOut(ctx); err != nil {
		log.Warn("server sign-out failed", "error", err)
	}

	if err := s.configManager.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	return nil
}

// IsLoggedIn checks if the user is currently authenticated
// Note: This only checks if tokens exist, not if they're valid
func (s *authService) IsLoggedIn() bool {
	return s.configManager.IsLoggedIn()
}

// ResendVerification asks the server to resend the verification email
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	apiURL, err := s.configManager.APIURL()
	if err != nil {
		return fmt.Errorf("failed to get API URL: %w", err)
	}

	return auth.NewPasswordFlow(apiURL).ResendVerification(ctx, email)
}

// SessionInfo reports the stored user ID and access token claims
func (s *authService) SessionInfo() (*iface.SessionInfo, error) {
	cfg, err := s.configManager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.AccessToken == "" && cfg.RefreshToken == "" {
		return nil, fmt.Errorf("not logged in. Please run 'jarvis login' first")
	}

	info := &iface.SessionInfo{UserID: cfg.UserID}

	if cfg.AccessToken != "" {
		tokenInfo, err := auth.InspectToken(cfg.AccessToken)
		if err != nil {
			// An undecodable token is still usable as an opaque
			// bearer credential; report what we have
			log.Debug("failed to decode access token", "error", err)
			return info, nil
		}
		info.TokenSubject = tokenInfo.Subject
		info.TokenExpiresAt = tokenInfo.ExpiresAt
	}

	return info, nil
}

func (s *authService) saveTokens(tokens *auth.TokenSet) error {
	if err := s.configManager.SaveCredentials(tokens.AccessToken, tokens.RefreshToken, tokens.UserID); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}
