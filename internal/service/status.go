package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jarvis-chat/jarvis-cli/internal/auth"
	"github.com/jarvis-chat/jarvis-cli/internal/config"
	iface "github.com/jarvis-chat/jarvis-cli/internal/service/interface"
)

// probeTimeout bounds the diagnostic connectivity check. Normal API calls
// use the executor's own client; this short timeout is only for `status`.
const probeTimeout = 5 * time.Second

const statusPath = "/api/v1/status"

// statusService implements iface.StatusService
type statusService struct {
	configManager *config.Manager
	httpClient    *http.Client
}

// NewStatusService creates a new status service
func NewStatusService(configManager *config.Manager) iface.StatusService {
	return &statusService{
		configManager: configManager,
		httpClient:    &http.Client{Timeout: probeTimeout},
	}
}

// Check probes the API root unauthenticated and reports local session state
func (s *statusService) Check(ctx context.Context) (*iface.Status, error) {
	cfg, err := s.configManager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	status := &iface.Status{
		LoggedIn: cfg.AccessToken != "" || cfg.RefreshToken != "",
	}

	if cfg.AccessToken != "" {
		if info, err := auth.InspectToken(cfg.AccessToken); err == nil {
			status.TokenExpiresAt = info.ExpiresAt
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.APIURL+statusPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		// The probe result carries reachability; transport failure is
		// a finding, not an error
		return status, nil
	}
	defer resp.Body.Close()

	status.APIReachable = resp.StatusCode < 500
	status.Latency = time.Since(start)

	return status, nil
}
