package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds the claims decoded from an access token
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken decodes the claims of an access token for local display.
// The signature is NOT verified; the server remains the authority on
// whether the token is actually valid.
func InspectToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	info := &TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
