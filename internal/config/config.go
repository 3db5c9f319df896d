// Package config provides configuration management for the Jarvis CLI.
// It handles reading and writing credentials and settings to the config file.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const (
	// DefaultAPIURL is the default Jarvis API endpoint
	DefaultAPIURL = "https://api.jarvis.cx"

	// ConfigDirName is the name of the config directory
	ConfigDirName = ".jarvis"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.json"

	// EnvAPIURL overrides the API URL from the environment when set
	EnvAPIURL = "JARVIS_API_URL"
)

// Config represents the CLI configuration stored on disk
type Config struct {
	// AccessToken is the short-lived bearer token for API authentication
	AccessToken string `json:"access_token,omitempty"`

	// RefreshToken is the long-lived token exchanged for new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// UserID is the identifier of the signed-in user
	UserID string `json:"user_id,omitempty"`

	// APIURL is the base URL of the Jarvis API
	APIURL string `json:"api_url,omitempty"`
}

// Manager handles configuration file operations
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(homeDir, ConfigDirName, ConfigFileName)
	return &Manager{configPath: configPath}, nil
}

// NewManagerWithPath creates a new configuration manager with a custom path
// This is useful for testing
func NewManagerWithPath(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the configuration from disk
// Returns a default config if the file doesn't exist
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{
				APIURL: resolveAPIURL(""),
			}, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.APIURL = resolveAPIURL(config.APIURL)

	return &config, nil
}

// Save writes the configuration to disk
func (m *Manager) Save(config *Config) error {
	// Ensure the config directory exists
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	return os.WriteFile(m.configPath, data, 0600)
}

// Clear removes all credential data from the config
func (m *Manager) Clear() error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	config.AccessToken = ""
	config.RefreshToken = ""
	config.UserID = ""

	return m.Save(config)
}

// Delete removes the config file entirely
func (m *Manager) Delete() error {
	err := os.Remove(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// IsLoggedIn checks if credentials are stored
// Note: This only checks if tokens exist, not if they're valid
func (m *Manager) IsLoggedIn() bool {
	config, err := m.Load()
	if err != nil {
		return false
	}

	return config.AccessToken != "" || config.RefreshToken != ""
}

// SaveCredentials saves a full token set after sign-in or sign-up
func (m *Manager) SaveCredentials(accessToken, refreshToken, userID string) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	config.AccessToken = accessToken
	config.RefreshToken = refreshToken
	config.UserID = userID

	return m.Save(config)
}

// AccessToken returns the current access token, which may be empty
func (m *Manager) AccessToken() (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	return config.AccessToken, nil
}

// RefreshToken returns the current refresh token, which may be empty
func (m *Manager) RefreshToken() (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	return config.RefreshToken, nil
}

// StoreAccessToken replaces the stored access token after a refresh.
// The refresh token and user ID are left untouched.
func (m *Manager) StoreAccessToken(token string) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	config.AccessToken = token

	return m.Save(config)
}

// UserID returns the stored user ID
func (m *Manager) UserID() (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	return config.UserID, nil
}

// APIURL returns the configured API URL
func (m *Manager) APIURL() (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	return config.APIURL, nil
}

// ConfigPath returns the path to the config file
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// resolveAPIURL applies the environment override and default
func resolveAPIURL(configured string) string {
	if env := os.Getenv(EnvAPIURL); env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return DefaultAPIURL
}
