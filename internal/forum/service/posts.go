package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/metrics"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/idx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

type PostService struct {
	Store store.Store
	Now   Clock
}

// CreatePost appends a reply to an unlocked thread and bumps the thread's
// activity time. The lock applies to every role, moderators included.
func (s *PostService) CreatePost(ctx context.Context, actor domain.Actor, threadID, body string) (domain.PostView, error) {
	l := slogx.FromContext(ctx)

	// 1. Authorize
	if err := guard(ctx, actor, authz.Authenticated, "create post"); err != nil {
		return domain.PostView{}, err
	}

	// 2. Normalize
	body, err := domain.NormalizePostBody(body)
	if err != nil {
		return domain.PostView{}, err
	}

	// 3. Insert, gated on the thread being present and unlocked
	now := s.Now.now()
	p := domain.Post{
		ID:        idx.NewAt(now).String(),
		ThreadID:  threadID,
		AuthorID:  actor.ID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		switch {
		case errors.Is(err, store.ErrLocked):
			metrics.PostsRejected.WithLabelValues("locked").Inc()
			l.Info("reply rejected", slog.String("thread_id", threadID), slog.String("reason", "locked"))
			return domain.PostView{}, domain.ErrThreadLocked
		case errors.Is(err, store.ErrNotFound):
			metrics.PostsRejected.WithLabelValues("missing").Inc()
			return domain.PostView{}, domain.ErrThreadMissing
		}
		return domain.PostView{}, dependency(ctx, "create post", err)
	}

	// 4. Bump thread activity. The reply is already stored, so a failure
	// here is reported but does not fail the request.
	if err := s.Store.Threads().TouchActivity(ctx, threadID, now); err != nil {
		metrics.ActivityTouchFailures.Inc()
		l.Error("failed to update thread activity",
			slog.String("thread_id", threadID),
			slog.String("post_id", p.ID),
			slog.Any("error", err),
		)
	}

	metrics.PostsCreated.Inc()
	l.Info("post created",
		slog.String("post_id", p.ID),
		slog.String("thread_id", threadID),
		slog.String("author_id", actor.ID),
	)
	return domain.PostView{
		ID:        p.ID,
		ThreadID:  p.ThreadID,
		Body:      p.Body,
		Author:    actor.Ref(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

// FlagPost queues a post for moderator review. The post must belong to
// threadID. Flagging an already flagged post succeeds without change.
func (s *PostService) FlagPost(ctx context.Context, actor domain.Actor, threadID, postID string) (domain.FlagOutcome, error) {
	if err := guard(ctx, actor, authz.Authenticated, "flag post"); err != nil {
		return domain.FlagOutcome{}, err
	}

	p, err := s.Store.Posts().GetPostByID(ctx, postID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.FlagOutcome{}, domain.ErrPostNotFound
	case err != nil:
		return domain.FlagOutcome{}, dependency(ctx, "get post", err)
	}
	if p.ThreadID != threadID {
		return domain.FlagOutcome{}, domain.ErrPostNotFound
	}

	ok, err := s.Store.Posts().FlagPost(ctx, postID, s.Now.now())
	if err != nil {
		return domain.FlagOutcome{}, dependency(ctx, "flag post", err)
	}
	if !ok {
		// Removed between the read and the write.
		return domain.FlagOutcome{}, domain.ErrPostNotFound
	}

	metrics.FlagsRaised.Inc()
	slogx.FromContext(ctx).Info("post flagged",
		slog.String("post_id", postID),
		slog.String("thread_id", threadID),
		slog.String("flagged_by", actor.ID),
	)
	return domain.FlagOutcome{PostID: postID, ThreadID: threadID}, nil
}
