package garagesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the public garage endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Session calls owner endpoints with a bearer token.
type Session struct {
	client      *Client
	accessToken string
	expiresAt   time.Time
}

// NewSession wraps an access token obtained elsewhere.
func (c *Client) NewSession(accessToken string, expiresAt time.Time) *Session {
	return &Session{client: c, accessToken: accessToken, expiresAt: expiresAt}
}

func (s *Session) AccessToken() string { return s.accessToken }

// Expired reports whether the access token has passed its expiry.
func (s *Session) Expired() bool { return !time.Now().Before(s.expiresAt) }

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, "", http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*OwnerResponse, error) {
	var out OwnerResponse
	if err := c.do(ctx, "", http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login returns ErrMFARequired when totpCode is empty and the owner has TOTP
// enabled.
func (c *Client) Login(ctx context.Context, email, password, totpCode string) (*Session, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password, TOTPCode: totpCode}
	if err := c.do(ctx, "", http.MethodPost, "/v1/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(out.AccessToken, out.ExpiresAt), nil
}

func (s *Session) Me(ctx context.Context) (*OwnerResponse, error) {
	var out OwnerResponse
	if err := s.client.do(ctx, s.accessToken, http.MethodGet, "/v1/owners/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListVehicles(ctx context.Context) ([]VehicleResponse, error) {
	var out []VehicleResponse
	if err := s.client.do(ctx, s.accessToken, http.MethodGet, "/v1/vehicles", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) RegisterVehicle(ctx context.Context, req VehicleRequest) (*VehicleResponse, error) {
	var out VehicleResponse
	if err := s.client.do(ctx, s.accessToken, http.MethodPost, "/v1/vehicles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueMaintenanceQR asks for a workshop access code for one of the owner's
// vehicles.
func (s *Session) IssueMaintenanceQR(ctx context.Context, vehicleID string) (*QRResponse, error) {
	var out QRResponse
	path := "/v1/qr/maintenance/" + vehicleID
	if err := s.client.do(ctx, s.accessToken, http.MethodPost, path, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Reminders(ctx context.Context) ([]ReminderResponse, error) {
	var out []ReminderResponse
	if err := s.client.do(ctx, s.accessToken, http.MethodGet, "/v1/reminders", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, token, method, path string, body, target any, expected int) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expected {
		return parseErrorResponse(resp.StatusCode, raw)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseErrorResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode:  status,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected status %d", status),
		}
	}
	return apiErr
}
