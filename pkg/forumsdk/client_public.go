package forumsdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, "", http.MethodGet, "/livez", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service and its dependencies are ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, "", http.MethodGet, "/readyz", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJWKS fetches the public keys session tokens are signed with.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var out JWKSResponse
	if err := c.call(ctx, "", http.MethodGet, "/.well-known/jwks.json", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap creates the first super user. It only works while the forum has
// no users and the server has a bootstrap token configured.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*UserResponse, error) {
	var out UserResponse
	headers := map[string]string{"X-Bootstrap-Token": token}
	if err := c.call(ctx, "", http.MethodPost, "/v1/bootstrap", req, headers, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a member account.
func (c *SDKClient) Register(ctx context.Context, username, password string) (*UserResponse, error) {
	var out UserResponse
	req := RegisterRequest{Username: username, Password: password}
	if err := c.call(ctx, "", http.MethodPost, "/v1/auth/register", req, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListThreads returns every thread grouped by category.
func (c *SDKClient) ListThreads(ctx context.Context) (*ListThreadsResponse, error) {
	var out ListThreadsResponse
	if err := c.call(ctx, "", http.MethodGet, "/v1/threads", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetThread returns a thread and its posts.
func (c *SDKClient) GetThread(ctx context.Context, threadID string) (*ThreadDetailResponse, error) {
	var out ThreadDetailResponse
	if err := c.call(ctx, "", http.MethodGet, "/v1/threads/"+threadID, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
