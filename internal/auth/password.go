// Package auth provides sign-in, sign-up and OAuth flows for the CLI.
// These endpoints are unauthenticated; everything after them goes through
// the api package's authenticated client.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	signInPath             = "/api/v1/auth/password/sign-in"
	signUpPath             = "/api/v1/auth/password/sign-up"
	resendVerificationPath = "/api/v1/auth/verification/resend"
)

// TokenSet is the credential payload returned by the sign-in endpoints
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// PasswordFlow handles email/password authentication
type PasswordFlow struct {
	apiURL     string
	httpClient *http.Client
}

// NewPasswordFlow creates a new password flow handler
func NewPasswordFlow(apiURL string) *PasswordFlow {
	return &PasswordFlow{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SignIn exchanges an email and password for a token set
func (p *PasswordFlow) SignIn(ctx context.Context, email, password string) (*TokenSet, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var tokens TokenSet
	if err := p.post(ctx, signInPath, body, &tokens); err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}
	return &tokens, nil
}

// SignUp registers a new account. The server sends a verification email;
// the returned token set is usable immediately.
func (p *PasswordFlow) SignUp(ctx context.Context, email, password, username string) (*TokenSet, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"username": username,
	}

	var tokens TokenSet
	if err := p.post(ctx, signUpPath, body, &tokens); err != nil {
		return nil, fmt.Errorf("sign-up failed: %w", err)
	}
	return &tokens, nil
}

// ResendVerification asks the server to send the verification email again
func (p *PasswordFlow) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := p.post(ctx, resendVerificationPath, body, nil); err != nil {
		return fmt.Errorf("failed to resend verification email: %w", err)
	}
	return nil
}

func (p *PasswordFlow) post(ctx context.Context, path string, body, result interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%s (status %d)", errResp.Message, resp.StatusCode)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
