package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrLocked        = errors.New("store: thread locked")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Sub-repositories are exposed as methods so a Tx can hand
// out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Threads() Threads
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the identity store. Usernames are normalized with
// domain.NormalizeUsername on every read and write.
type Users interface {
	// CreateUser inserts a user. A normalized username collision returns
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns every user without credentials, oldest first.
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)

	// UpdateRole sets the role and bumps updated_at. It reports false when no
	// user matched.
	UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) (bool, error)

	CountUsers(ctx context.Context) (int, error)
}

type Threads interface {
	CreateThread(ctx context.Context, t domain.Thread) error

	// ListThreadsWithMeta returns every thread with its author projection,
	// post count and latest post time, most recently active first.
	ListThreadsWithMeta(ctx context.Context) ([]domain.ThreadView, error)

	GetThreadByID(ctx context.Context, id string) (domain.ThreadView, error)

	// SetLock sets is_locked and bumps updated_at. It reports false when no
	// thread matched.
	SetLock(ctx context.Context, id string, locked bool, now time.Time) (bool, error)

	// TouchActivity sets updated_at to now.
	TouchActivity(ctx context.Context, id string, now time.Time) error
}

type Posts interface {
	// CreatePost inserts the post only while its thread exists and is
	// unlocked. Returns ErrNotFound for a missing thread and ErrLocked for a
	// locked one.
	CreatePost(ctx context.Context, p domain.Post) error

	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPostsByThread returns the posts of a thread, oldest first.
	ListPostsByThread(ctx context.Context, threadID string) ([]domain.PostView, error)

	// FlagPost marks a post flagged. Flagging twice is not an error.
	FlagPost(ctx context.Context, id string, now time.Time) (bool, error)

	// ListFlaggedPosts returns flagged posts, most recently flagged first.
	ListFlaggedPosts(ctx context.Context) ([]domain.FlaggedView, error)

	// ApprovePost clears the flag and records the note.
	ApprovePost(ctx context.Context, id, note string, now time.Time) (bool, error)

	// RemovePost deletes a post regardless of its flag state.
	RemovePost(ctx context.Context, id string) (bool, error)
}
