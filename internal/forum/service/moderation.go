package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/metrics"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

// ModerationService runs the moderator and super user workflows: the flag
// queue, thread locks and role management.
type ModerationService struct {
	Store store.Store
	Now   Clock
}

// ListFlagged returns the moderation queue, most recently flagged first.
func (s *ModerationService) ListFlagged(ctx context.Context, actor domain.Actor) ([]domain.FlaggedView, error) {
	if err := guard(ctx, actor, authz.Moderator, "list flagged"); err != nil {
		return nil, err
	}
	views, err := s.Store.Posts().ListFlaggedPosts(ctx)
	if err != nil {
		return nil, dependency(ctx, "list flagged posts", err)
	}
	return views, nil
}

// ResolvePost approves or removes a post. Approval clears the flag and
// records the note; removal deletes the post. Neither requires the post to
// be flagged.
func (s *ModerationService) ResolvePost(ctx context.Context, actor domain.Actor, postID string, action domain.ResolveAction, note string) (domain.Resolution, error) {
	l := slogx.FromContext(ctx)

	if err := guard(ctx, actor, authz.Moderator, "resolve post"); err != nil {
		return domain.Resolution{}, err
	}

	note = strings.TrimSpace(note)

	var (
		ok  bool
		err error
	)
	switch action {
	case domain.ResolveRemove:
		ok, err = s.Store.Posts().RemovePost(ctx, postID)
	default:
		action = domain.ResolveApprove
		ok, err = s.Store.Posts().ApprovePost(ctx, postID, note, s.Now.now())
	}
	if err != nil {
		return domain.Resolution{}, dependency(ctx, action.String()+" post", err)
	}
	if !ok {
		return domain.Resolution{}, domain.ErrPostNotFound
	}

	metrics.ModerationActions.WithLabelValues(action.String()).Inc()
	l.Info("post resolved",
		slog.String("post_id", postID),
		slog.String("action", action.String()),
		slog.String("moderator_id", actor.ID),
	)
	return domain.Resolution{PostID: postID, Action: action, Note: note}, nil
}

// ToggleThreadLock flips a thread between locked and unlocked.
func (s *ModerationService) ToggleThreadLock(ctx context.Context, actor domain.Actor, threadID string) (domain.LockToggle, error) {
	if err := guard(ctx, actor, authz.Moderator, "toggle lock"); err != nil {
		return domain.LockToggle{}, err
	}

	var out domain.LockToggle
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Threads().GetThreadByID(ctx, threadID)
		if err != nil {
			return err
		}
		ok, err := tx.Threads().SetLock(ctx, threadID, !t.IsLocked, s.Now.now())
		if err != nil {
			return err
		}
		if !ok {
			return store.ErrNotFound
		}
		out = domain.LockToggle{ThreadID: threadID, Locked: !t.IsLocked}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.LockToggle{}, domain.ErrThreadNotFound
	case err != nil:
		return domain.LockToggle{}, dependency(ctx, "toggle lock", err)
	}

	action := "unlock"
	if out.Locked {
		action = "lock"
	}
	metrics.ModerationActions.WithLabelValues(action).Inc()
	slogx.FromContext(ctx).Info("thread lock toggled",
		slog.String("thread_id", threadID),
		slog.Bool("locked", out.Locked),
		slog.String("moderator_id", actor.ID),
	)
	return out, nil
}

// ListUsers returns every account for role management.
func (s *ModerationService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.UserSummary, error) {
	if err := guard(ctx, actor, authz.Super, "list users"); err != nil {
		return nil, err
	}
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, dependency(ctx, "list users", err)
	}
	return users, nil
}

// UpdateRole changes another user's role. A super user may not move
// themselves off super, and asking for the role the target already holds
// writes nothing.
func (s *ModerationService) UpdateRole(ctx context.Context, actor domain.Actor, userID, rawRole string) (domain.RoleChange, error) {
	l := slogx.FromContext(ctx)

	// 1. Authorize
	if err := guard(ctx, actor, authz.Super, "update role"); err != nil {
		return domain.RoleChange{}, err
	}

	// 2. Validate the requested role
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.RoleChange{}, err
	}

	// 3. Load target
	target, err := s.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.RoleChange{}, domain.ErrUserNotFound
	case err != nil:
		return domain.RoleChange{}, dependency(ctx, "get user", err)
	}

	// 4. Self-demotion guard
	if target.ID == actor.ID && role != domain.RoleSuper {
		l.Warn("self demotion refused", slog.String("user_id", actor.ID))
		return domain.RoleChange{}, domain.ErrSelfDemotion
	}

	out := domain.RoleChange{UserID: target.ID, Username: target.Username, Role: role}
	if target.Role == role {
		return out, nil
	}

	// 5. Write
	ok, err := s.Store.Users().UpdateRole(ctx, target.ID, role, s.Now.now())
	if err != nil {
		return domain.RoleChange{}, dependency(ctx, "update role", err)
	}
	if !ok {
		return domain.RoleChange{}, domain.ErrUserNotFound
	}

	out.Changed = true
	metrics.RoleChanges.WithLabelValues(role.String()).Inc()
	l.Info("role updated",
		slog.String("user_id", target.ID),
		slog.String("from", target.Role.String()),
		slog.String("to", role.String()),
		slog.String("changed_by", actor.ID),
	)
	return out, nil
}
