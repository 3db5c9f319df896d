package api

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorResponse represents an error payload from the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// APIError represents a non-auth error returned by the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error is a not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AuthError indicates a request that could not be authenticated, either
// because no usable credentials are stored or because the refresh-and-retry
// budget was spent without the API accepting the token.
type AuthError struct {
	// StatusCode is the last auth-rejecting status, 0 when the failure
	// happened before any response was received
	StatusCode int
	Reason     string
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NetworkError indicates the request never produced an HTTP response
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates the API rejected the request with 429. The
// executor does not retry on its own; callers can inspect RetryAfter.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (retry after %s)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: %s", e.Message)
}
