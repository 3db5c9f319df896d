package api

import "context"

// User represents the signed-in user's profile
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles,omitempty"`
}

// Usage represents the remaining token quota for the user
type Usage struct {
	AvailableTokens int    `json:"availableTokens"`
	TotalTokens     int    `json:"totalTokens"`
	Unlimited       bool   `json:"unlimited"`
	Date            string `json:"date,omitempty"`
}

// GetCurrentUser fetches the signed-in user's profile
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/api/v1/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsage fetches the remaining token quota
func (c *Client) GetUsage(ctx context.Context) (*Usage, error) {
	var usage Usage
	if err := c.Get(ctx, "/api/v1/tokens/usage", &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// SignOut invalidates the current session on the server. Credential
// cleanup is the caller's job; a failure here is not fatal to logout.
func (c *Client) SignOut(ctx context.Context) error {
	return c.Post(ctx, "/api/v1/auth/sign-out", nil, nil)
}
