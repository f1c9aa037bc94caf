package forumsdk

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error" example:"validation_error"`
	ErrorDescription string `json:"error_description" example:"title must be at least 5 characters"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
	Signer   string `json:"signer"`
}

// JWKSResponse holds the keys session tokens are signed with.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Identity Types
// ============================================================================

type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

// BootstrapRequest creates the first super user.
type BootstrapRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"change-me-now"`
}

// LoginResponse carries the session token. The token is only valid while
// the session has not been revoked.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type" example:"Bearer"`
	ExpiresIn   int           `json:"expires_in" example:"86400"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        ActorResponse `json:"user"`
}

// ActorResponse is the caller as the server currently sees them.
type ActorResponse struct {
	ID       string `json:"id" example:"01J9ZQ4S3V1B3C9W7R2KXM8T5E"`
	Username string `json:"username" example:"alice"`
	Role     string `json:"role" example:"member"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role" example:"member"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" example:"moderator"`
}

type RoleChangeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Changed  bool   `json:"changed"`
	Message  string `json:"message" example:"alice is now a moderator"`
}

// ============================================================================
// Thread Types
// ============================================================================

// TagList accepts either a JSON array of tags or a single comma separated
// string.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*t = strings.Split(text, ",")
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

type CreateThreadRequest struct {
	Title    string  `json:"title" example:"Welcome to the forum"`
	Body     string  `json:"body" example:"Introduce yourself here."`
	Category string  `json:"category,omitempty" example:"General"`
	Tags     TagList `json:"tags,omitempty" swaggertype:"array,string"`
}

// AuthorResponse is the author projection inlined into threads and posts.
type AuthorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ThreadResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Summary      string         `json:"summary"`
	Category     string         `json:"category"`
	Tags         []string       `json:"tags"`
	IsLocked     bool           `json:"is_locked"`
	Author       AuthorResponse `json:"author"`
	PostCount    int            `json:"post_count"`
	LatestPostAt time.Time      `json:"latest_post_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type CategoryResponse struct {
	Name    string           `json:"name"`
	Threads []ThreadResponse `json:"threads"`
}

// ListThreadsResponse lists threads grouped by category. Categories appear
// in the order of their most recently active thread.
type ListThreadsResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type ThreadDetailResponse struct {
	Thread ThreadResponse `json:"thread"`
	Posts  []PostResponse `json:"posts"`
}

// ============================================================================
// Post Types
// ============================================================================

type CreatePostRequest struct {
	Body string `json:"body" example:"Thanks for sharing"`
}

type PostResponse struct {
	ID             string         `json:"id"`
	ThreadID       string         `json:"thread_id"`
	Body           string         `json:"body"`
	Author         AuthorResponse `json:"author"`
	IsFlagged      bool           `json:"is_flagged"`
	ModerationNote string         `json:"moderation_note,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type FlagResponse struct {
	PostID   string `json:"post_id"`
	ThreadID string `json:"thread_id"`
	Message  string `json:"message"`
}

// ============================================================================
// Moderation Types
// ============================================================================

type ThreadRefResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	IsLocked bool   `json:"is_locked"`
}

type FlaggedPostResponse struct {
	ID             string            `json:"id"`
	Body           string            `json:"body"`
	ModerationNote string            `json:"moderation_note,omitempty"`
	Author         AuthorResponse    `json:"author"`
	Thread         ThreadRefResponse `json:"thread"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type ListFlaggedResponse struct {
	Posts []FlaggedPostResponse `json:"posts"`
}

// ResolveRequest decides a flagged post. Action "remove" deletes the post,
// anything else approves it.
type ResolveRequest struct {
	Action string `json:"action" example:"approve"`
	Note   string `json:"note,omitempty" example:"Reviewed, no issue"`
}

type ResolveResponse struct {
	PostID  string `json:"post_id"`
	Action  string `json:"action"`
	Note    string `json:"note,omitempty"`
	Message string `json:"message"`
}

type LockToggleResponse struct {
	ThreadID string `json:"thread_id"`
	Locked   bool   `json:"locked"`
	Message  string `json:"message"`
}
