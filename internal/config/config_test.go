package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return NewManagerWithPath(filepath.Join(t.TempDir(), "config.json"))
}

func TestLoadReturnsDefaultWhenFileMissing(t *testing.T) {
	m := testManager(t)

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Empty(t, cfg.AccessToken)
	assert.False(t, m.IsLoggedIn())
}

func TestSaveCredentialsRoundTrip(t *testing.T) {
	m := testManager(t)

	require.NoError(t, m.SaveCredentials("access-1", "refresh-1", "user-1"))

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "access-1", cfg.AccessToken)
	assert.Equal(t, "refresh-1", cfg.RefreshToken)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.True(t, m.IsLoggedIn())
}

func TestStoreAccessTokenPreservesRefreshTokenAndUserID(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.SaveCredentials("old-access", "refresh-1", "user-1"))

	require.NoError(t, m.StoreAccessToken("new-access"))

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "new-access", cfg.AccessToken)
	assert.Equal(t, "refresh-1", cfg.RefreshToken)
	assert.Equal(t, "user-1", cfg.UserID)
}

func TestClearWipesAllCredentialFields(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.SaveCredentials("access-1", "refresh-1", "user-1"))

	require.NoError(t, m.Clear())

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AccessToken)
	assert.Empty(t, cfg.RefreshToken)
	assert.Empty(t, cfg.UserID)
	assert.False(t, m.IsLoggedIn())
}

func TestEnvOverridesAPIURL(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.Save(&Config{APIURL: "https://configured.example.com"}))

	t.Setenv(EnvAPIURL, "https://override.example.com")

	url, err := m.APIURL()
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", url)
}

func TestSaveRestrictsFilePermissions(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.SaveCredentials("access-1", "refresh-1", "user-1"))

	info, err := os.Stat(m.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.SaveCredentials("access-1", "refresh-1", "user-1"))

	require.NoError(t, m.Delete())
	require.NoError(t, m.Delete())
}
