package forumsdk

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

// SDKClient talks to the forum API. It covers the public endpoints and
// hands out a Session for everything that needs a login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is a logged in client. All methods send the session token as a
// bearer token.
type Session struct {
	client    *SDKClient
	token     string
	expiresAt time.Time
	user      ActorResponse
}

// NewSessionFromToken wraps an existing session token.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Login authenticates and returns a Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	var out LoginResponse
	err := c.call(ctx, "", http.MethodPost, "/v1/auth/login",
		LoginRequest{Username: username, Password: password}, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &Session{
		client:    c,
		token:     out.AccessToken,
		expiresAt: out.ExpiresAt,
		user:      out.User,
	}, nil
}

func (s *Session) Token() string        { return s.token }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the account the session was opened for, as of login.
func (s *Session) User() ActorResponse { return s.user }

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// call sends an optional JSON body and decodes the response into out. A nil
// out expects 204 No Content.
func (c *SDKClient) call(
	ctx context.Context,
	token, method, path string,
	in any,
	headers map[string]string,
	out any,
	expectedStatus int,
) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, respBody)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (s *Session) call(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	return s.client.call(ctx, s.token, method, path, in, nil, out, expectedStatus)
}
