package forumsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Identity
// ============================================================================

// Me returns the caller with their current role.
func (s *Session) Me(ctx context.Context) (*ActorResponse, error) {
	var out ActorResponse
	if err := s.call(ctx, http.MethodGet, "/v1/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the session. The token is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	return s.call(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
}

// ============================================================================
// Threads and posts
// ============================================================================

func (s *Session) CreateThread(ctx context.Context, req CreateThreadRequest) (*ThreadResponse, error) {
	var out ThreadResponse
	if err := s.call(ctx, http.MethodPost, "/v1/threads", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreatePost(ctx context.Context, threadID, body string) (*PostResponse, error) {
	var out PostResponse
	path := "/v1/threads/" + threadID + "/posts"
	if err := s.call(ctx, http.MethodPost, path, CreatePostRequest{Body: body}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) FlagPost(ctx context.Context, threadID, postID string) (*FlagResponse, error) {
	var out FlagResponse
	path := "/v1/threads/" + threadID + "/posts/" + postID + "/flag"
	if err := s.call(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Moderation (moderator or super)
// ============================================================================

func (s *Session) ListFlagged(ctx context.Context) (*ListFlaggedResponse, error) {
	var out ListFlaggedResponse
	if err := s.call(ctx, http.MethodGet, "/v1/moderation/flags", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ResolvePost(ctx context.Context, postID string, req ResolveRequest) (*ResolveResponse, error) {
	var out ResolveResponse
	path := "/v1/moderation/posts/" + postID + "/resolve"
	if err := s.call(ctx, http.MethodPost, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ToggleThreadLock(ctx context.Context, threadID string) (*LockToggleResponse, error) {
	var out LockToggleResponse
	path := "/v1/moderation/threads/" + threadID + "/toggle-lock"
	if err := s.call(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Role management (super)
// ============================================================================

func (s *Session) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	var out ListUsersResponse
	if err := s.call(ctx, http.MethodGet, "/v1/moderation/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateRole(ctx context.Context, userID, role string) (*RoleChangeResponse, error) {
	var out RoleChangeResponse
	path := "/v1/moderation/users/" + userID + "/role"
	if err := s.call(ctx, http.MethodPut, path, UpdateRoleRequest{Role: role}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
