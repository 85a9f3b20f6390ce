// File: services/avatar/heygen.go
package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"frontdesk/utils"

	"go.uber.org/zap"
)

const liveAvatarBaseURL = "https://api.liveavatar.com/v1"

// SessionToken is the credential pair a client needs to open a streaming
// avatar session.
type SessionToken struct {
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
}

// SessionInfo carries the streaming endpoints for a started session.
type SessionInfo struct {
	SessionID    string `json:"session_id"`
	WebsocketURL string `json:"websocket_url"`
	LiveKitURL   string `json:"livekit_url"`
	LiveKitToken string `json:"livekit_token"`
}

// Service wraps the HeyGen/LiveAvatar session lifecycle API.
type Service struct {
	APIKey          string
	AvatarID        string
	SandboxAvatarID string

	HTTPClient *http.Client
}

func NewService(apiKey, avatarID, sandboxAvatarID string) *Service {
	return &Service{
		APIKey:          apiKey,
		AvatarID:        avatarID,
		SandboxAvatarID: sandboxAvatarID,
		HTTPClient:      &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateSessionToken provisions a new avatar session.
func (s *Service) CreateSessionToken(ctx context.Context, useSandbox bool) (*SessionToken, error) {
	avatarID := s.AvatarID
	if useSandbox && s.SandboxAvatarID != "" {
		avatarID = s.SandboxAvatarID
	}

	payload, err := json.Marshal(map[string]interface{}{
		"mode":       "LITE",
		"avatar_id":  avatarID,
		"is_sandbox": useSandbox,
		"video_settings": map[string]string{
			"quality":  "high",
			"encoding": "H264",
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, liveAvatarBaseURL+"/sessions/token", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", s.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	data, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("avatar token: %w", err)
	}

	var token SessionToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("avatar token: %w", err)
	}
	return &token, nil
}

// StartSession starts a provisioned session and returns the streaming
// endpoints.
func (s *Service) StartSession(ctx context.Context, sessionToken string) (*SessionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, liveAvatarBaseURL+"/sessions/start", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	data, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("avatar start: %w", err)
	}

	// The API names differ from what the frontend expects.
	var raw struct {
		SessionID          string `json:"session_id"`
		WsURL              string `json:"ws_url"`
		LiveKitURL         string `json:"livekit_url"`
		LiveKitClientToken string `json:"livekit_client_token"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("avatar start: %w", err)
	}
	return &SessionInfo{
		SessionID:    raw.SessionID,
		WebsocketURL: raw.WsURL,
		LiveKitURL:   raw.LiveKitURL,
		LiveKitToken: raw.LiveKitClientToken,
	}, nil
}

// StopSession stops a session. A non-OK status is tolerated since the
// session may already be gone.
func (s *Service) StopSession(ctx context.Context, sessionToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, liveAvatarBaseURL+"/sessions/stop", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("avatar stop: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.GetLogger().Warn("avatar stop returned non-OK status", zap.Int("status", resp.StatusCode))
	}
	return nil
}

// do executes a request and unwraps the API's {"data": ...} envelope.
func (s *Service) do(req *http.Request) ([]byte, error) {
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned %d: %s", resp.StatusCode, body)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data, nil
	}
	return body, nil
}
