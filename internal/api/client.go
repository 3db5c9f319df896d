// Package api provides the HTTP client for communicating with the Jarvis API.
// All authenticated calls go through a single executor that attaches the
// current credentials and recovers from expired-token failures with a
// bounded refresh-and-retry loop.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jarvis-chat/jarvis-cli/internal/log"
)

const (
	// DefaultMaxAuthRetries is the number of refresh-and-retry cycles
	// permitted per logical request
	DefaultMaxAuthRetries = 1

	// RefreshPath is the endpoint exchanging a refresh token for a new
	// access token
	RefreshPath = "/api/v1/auth/refresh"

	// HeaderRefreshToken carries the refresh token on refresh calls
	HeaderRefreshToken = "X-Refresh-Token"

	// HeaderProjectID and HeaderClientID identify this client to the API
	// and are sent on every call
	HeaderProjectID = "X-Project-Id"
	HeaderClientID  = "X-Client-Id"

	// HeaderRequestID correlates the attempts of one logical request
	HeaderRequestID = "X-Request-Id"

	// ProjectID and ClientID are the fixed identifier values for the CLI
	ProjectID = "jarvis-chat"
	ClientID  = "jarvis-cli"
)

// Session provides the credentials attached to outbound requests and
// persists tokens refreshed on its behalf. config.Manager implements it;
// tests substitute in-memory fakes.
type Session interface {
	// AccessToken returns the current access token, which may be empty
	AccessToken() (string, error)

	// RefreshToken returns the current refresh token, which may be empty
	RefreshToken() (string, error)

	// StoreAccessToken persists a newly issued access token
	StoreAccessToken(token string) error
}

// Client is an HTTP client for the Jarvis API
type Client struct {
	baseURL        string
	httpClient     *http.Client
	session        Session
	maxAuthRetries int

	// refreshGroup collapses concurrent refreshes into one in-flight
	// call so racing requests cannot overwrite each other's token
	refreshGroup singleflight.Group
}

// NewClient creates a new API client bound to a session
func NewClient(baseURL string, session Session) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		session:        session,
		maxAuthRetries: DefaultMaxAuthRetries,
	}
}

// SetMaxAuthRetries overrides the refresh-and-retry bound
func (c *Client) SetMaxAuthRetries(n int) {
	c.maxAuthRetries = n
}

// Request performs an HTTP request to the API. On 401/403 it refreshes the
// access token and re-issues the same logical request, at most
// maxAuthRetries times; all attempts carry the same request ID and a body
// marshaled once up front, so the retry is idempotent from the client side.
func (c *Client) Request(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var jsonBody []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		jsonBody = b
	}

	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		retryable, err := c.attempt(ctx, method, url, requestID, jsonBody, result)
		if err == nil {
			return nil
		}
		if !retryable || attempt >= c.maxAuthRetries {
			return err
		}

		log.Debug("access token rejected, refreshing", "path", path, "attempt", attempt)
		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			log.Warn("token refresh failed", "path", path, "error", refreshErr)
			return &AuthError{Reason: "session expired", Err: refreshErr}
		}
	}
}

// attempt issues the request once. The second return value reports whether
// the failure is an auth rejection that a token refresh might fix.
func (c *Client) attempt(ctx context.Context, method, url, requestID string, jsonBody []byte, result interface{}) (bool, error) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	// Headers are rebuilt on every attempt so a retried call picks up
	// the access token written by the refresh, never the rejected one
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderProjectID, ProjectID)
	req.Header.Set(HeaderClientID, ClientID)
	req.Header.Set(HeaderRequestID, requestID)

	token, err := c.session.AccessToken()
	if err != nil {
		return false, fmt.Errorf("failed to read access token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &NetworkError{URL: url, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return true, &AuthError{
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf("request rejected with status %d", resp.StatusCode),
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		return false, &RateLimitError{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    serverMessage(respBody, "too many requests"),
		}
	case resp.StatusCode >= 400:
		return false, &APIError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(respBody, fmt.Sprintf("request failed with status %d", resp.StatusCode)),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return false, nil
}

// refreshResponse represents the response from the refresh endpoint
type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token and persists it. Concurrent callers share one in-flight refresh.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, c.doRefresh(ctx)
	})
	return err
}

func (c *Client) doRefresh(ctx context.Context) error {
	refreshToken, err := c.session.RefreshToken()
	if err != nil {
		return fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		// Nothing to exchange; fail before touching the network
		return errors.New("no refresh token stored")
	}

	url := c.baseURL + RefreshPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("failed to create refresh request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderProjectID, ProjectID)
	req.Header.Set(HeaderClientID, ClientID)
	req.Header.Set(HeaderRefreshToken, refreshToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token refresh failed with status %d", resp.StatusCode)
	}

	var refreshResp refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&refreshResp); err != nil {
		return fmt.Errorf("failed to parse refresh response: %w", err)
	}
	if refreshResp.AccessToken == "" {
		return errors.New("refresh response missing access token")
	}

	// Stored credentials are only mutated on success
	if err := c.session.StoreAccessToken(refreshResp.AccessToken); err != nil {
		return fmt.Errorf("failed to store refreshed token: %w", err)
	}

	log.Debug("access token refreshed")
	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.Request(ctx, http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Request(ctx, http.MethodPost, path, body, result)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.Request(ctx, http.MethodPatch, path, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	return c.Request(ctx, http.MethodDelete, path, nil, result)
}

// serverMessage extracts the server-supplied message from an error body,
// falling back to the given default when the body is not parseable
func serverMessage(body []byte, fallback string) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fallback
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
