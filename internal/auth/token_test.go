package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectTokenDecodesClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, jwt.MapClaims{
		"sub": "user-42",
		"exp": exp.Unix(),
	})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestInspectTokenWithoutExpiry(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{"sub": "user-42"})

	info, err := InspectToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestInspectTokenRejectsGarbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
