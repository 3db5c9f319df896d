package iface

import (
	"context"
	"time"
)

// Profile represents the signed-in user's account
type Profile struct {
	ID       string
	Email    string
	Username string
	Roles    []string
}

// Usage represents the remaining token quota
type Usage struct {
	AvailableTokens int
	TotalTokens     int
	Unlimited       bool
}

// UserService defines the interface for account operations
type UserService interface {
	// CurrentUser returns the signed-in user's profile
	CurrentUser(ctx context.Context) (*Profile, error)

	// Usage returns the remaining token quota
	Usage(ctx context.Context) (*Usage, error)
}

// Status describes the result of a connectivity probe
type Status struct {
	APIReachable   bool
	Latency        time.Duration
	LoggedIn       bool
	TokenExpiresAt time.Time
}

// StatusService defines the interface for the diagnostic connectivity probe
type StatusService interface {
	// Check probes the API with a short timeout and reports local
	// session state alongside
	Check(ctx context.Context) (*Status, error)
}
