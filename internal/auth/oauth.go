package auth

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/browser"
)

const (
	// DefaultCallbackPort is the default port for the local OAuth callback server
	DefaultCallbackPort = 9876

	oauthAuthorizePath = "/api/v1/auth/google"
	oauthTokenPath     = "/api/v1/auth/oauth/token"
)

// OAuthFlow handles browser-based Google sign-in against the Jarvis API
type OAuthFlow struct {
	apiURL       string
	callbackPort int
}

// NewOAuthFlow creates a new OAuth flow handler
func NewOAuthFlow(apiURL string) *OAuthFlow {
	return &OAuthFlow{
		apiURL:       apiURL,
		callbackPort: DefaultCallbackPort,
	}
}

// Login performs the browser OAuth flow. It starts a local server, opens
// the browser for authentication, waits for the callback with the
// authorization code, and exchanges it for a Jarvis token set.
func (o *OAuthFlow) Login(ctx context.Context) (*TokenSet, error) {
	port, err := o.findAvailablePort()
	if err != nil {
		return nil, fmt.Errorf("failed to find available port: %w", err)
	}

	redirectURI := fmt.Sprintf("http://localhost:%d/callback", port)

	// Random state ties the callback to this login attempt
	state, err := generateRandomState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	server := o.startCallbackServer(port, state, codeChan, errChan)
	defer server.Shutdown(context.Background())

	authURL := o.buildAuthURL(redirectURI, state)

	fmt.Println("Opening browser for authentication...")
	fmt.Printf("If the browser doesn't open, please visit:\n%s\n\n", authURL)

	if err := browser.OpenURL(authURL); err != nil {
		fmt.Printf("Failed to open browser automatically: %v\n", err)
	}

	fmt.Println("Waiting for authentication...")

	select {
	case code := <-codeChan:
		return o.exchangeCodeForTokens(ctx, code, redirectURI)
	case err := <-errChan:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("authentication timed out")
	}
}

// findAvailablePort finds an available port starting from the default
func (o *OAuthFlow) findAvailablePort() (int, error) {
	for port := o.callbackPort; port < o.callbackPort+10; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port found")
}

// startCallbackServer starts the local OAuth callback server
func (o *OAuthFlow) startCallbackServer(port int, expectedState string, codeChan chan<- string, errChan chan<- error) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state != expectedState {
			errChan <- fmt.Errorf("state mismatch")
			http.Error(w, "State mismatch", http.StatusBadRequest)
			return
		}

		if errMsg := r.URL.Query().Get("error"); errMsg != "" {
			errDesc := r.URL.Query().Get("error_description")
			errChan <- fmt.Errorf("OAuth error: %s - %s", errMsg, errDesc)
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, callbackHTML("Authentication failed. You can close this window."))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "No code received", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, callbackHTML("Authentication successful! You can close this window."))

		codeChan <- code
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go server.ListenAndServe()

	return server
}

// buildAuthURL builds the authorization URL for the Google sign-in page
func (o *OAuthFlow) buildAuthURL(redirectURI, state string) string {
	params := url.Values{}
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("state", state)

	return fmt.Sprintf("%s%s?%s", o.apiURL, oauthAuthorizePath, params.Encode())
}

// exchangeCodeForTokens exchanges the authorization code for a token set
func (o *OAuthFlow) exchangeCodeForTokens(ctx context.Context, code, redirectURI string) (*TokenSet, error) {
	body, err := json.Marshal(map[string]string{
		"code":         code,
		"redirect_uri": redirectURI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL+oauthTokenPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tokens TokenSet
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	return &tokens, nil
}

// generateRandomState generates a cryptographically secure random state string
func generateRandomState() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// callbackHTML returns the HTML page shown in the browser after the callback
func callbackHTML(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Jarvis CLI</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background-color: #f5f5f5;
        }
        .container {
            text-align: center;
            padding: 40px;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 { color: #333; margin-bottom: 10px; }
        p { color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Jarvis CLI</h1>
        <p>%s</p>
    </div>
</body>
</html>`, message)
}
