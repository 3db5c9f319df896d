package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInReturnsTokenSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, signInPath, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "me@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])

		w.Write([]byte(`{"access_token":"A1","refresh_token":"R1","user_id":"user-1"}`))
	}))
	defer server.Close()

	tokens, err := NewPasswordFlow(server.URL).SignIn(context.Background(), "me@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "A1", tokens.AccessToken)
	assert.Equal(t, "R1", tokens.RefreshToken)
	assert.Equal(t, "user-1", tokens.UserID)
}

func TestSignInSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer server.Close()

	_, err := NewPasswordFlow(server.URL).SignIn(context.Background(), "me@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestSignUpSendsUsername(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, signUpPath, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "newbie", body["username"])

		w.Write([]byte(`{"access_token":"A1","refresh_token":"R1","user_id":"user-2"}`))
	}))
	defer server.Close()

	tokens, err := NewPasswordFlow(server.URL).SignUp(context.Background(), "new@example.com", "hunter2", "newbie")
	require.NoError(t, err)
	assert.Equal(t, "user-2", tokens.UserID)
}

func TestResendVerification(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, resendVerificationPath, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, NewPasswordFlow(server.URL).ResendVerification(context.Background(), "me@example.com"))
	assert.True(t, called)
}
