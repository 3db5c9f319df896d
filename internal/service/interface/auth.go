// Package iface defines service interfaces for the Jarvis CLI.
// These interfaces enable dependency injection and mocking for tests.
package iface

import (
	"context"
	"time"
)

// SessionInfo describes the locally stored session
type SessionInfo struct {
	UserID         string
	TokenSubject   string
	TokenExpiresAt time.Time
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login signs in with email and password and saves credentials
	Login(ctx context.Context, email, password string) error

	// LoginWithBrowser performs the browser OAuth flow and saves credentials
	LoginWithBrowser(ctx context.Context) error

	// Signup registers a new account and saves credentials
	Signup(ctx context.Context, email, password, username string) error

	// Logout clears stored credentials
	Logout(ctx context.Context) error

	// IsLoggedIn checks if credentials are stored
	IsLoggedIn() bool

	// ResendVerification asks the server to resend the verification email
	ResendVerification(ctx context.Context, email string) error

	// SessionInfo reports the stored user ID and access token claims
	SessionInfo() (*SessionInfo, error)
}
