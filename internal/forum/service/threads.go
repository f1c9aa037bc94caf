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

type ThreadService struct {
	Store store.Store
	Now   Clock
}

// CreateThread stores a new thread together with its opening post. Both
// rows are written in one transaction.
func (s *ThreadService) CreateThread(ctx context.Context, actor domain.Actor, in domain.ThreadInput) (domain.ThreadView, error) {
	l := slogx.FromContext(ctx)

	// 1. Authorize
	if err := guard(ctx, actor, authz.Authenticated, "create thread"); err != nil {
		return domain.ThreadView{}, err
	}

	// 2. Normalize
	in, err := in.Normalize()
	if err != nil {
		return domain.ThreadView{}, err
	}

	// 3. Persist thread and seed post
	now := s.Now.now()
	t := domain.Thread{
		ID:         idx.NewAt(now).String(),
		Title:      in.Title,
		Body:       in.Body,
		Category:   in.Category,
		AuthorID:   actor.ID,
		Tags:       in.Tags,
		SeedPostID: idx.NewAt(now).String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	seed := domain.Post{
		ID:        t.SeedPostID,
		ThreadID:  t.ID,
		AuthorID:  actor.ID,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var view domain.ThreadView
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Threads().CreateThread(ctx, t); err != nil {
			return err
		}
		if err := tx.Posts().CreatePost(ctx, seed); err != nil {
			return err
		}
		v, err := tx.Threads().GetThreadByID(ctx, t.ID)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return domain.ThreadView{}, dependency(ctx, "create thread", err)
	}

	metrics.ThreadsCreated.Inc()
	l.Info("thread created",
		slog.String("thread_id", t.ID),
		slog.String("author_id", actor.ID),
		slog.String("category", t.Category),
	)
	return view, nil
}

// ListThreads returns every thread, most recently active first.
func (s *ThreadService) ListThreads(ctx context.Context) ([]domain.ThreadView, error) {
	views, err := s.Store.Threads().ListThreadsWithMeta(ctx)
	if err != nil {
		return nil, dependency(ctx, "list threads", err)
	}
	return views, nil
}

// ListByCategory returns the thread list bucketed by category.
func (s *ThreadService) ListByCategory(ctx context.Context) ([]domain.CategoryGroup, error) {
	views, err := s.ListThreads(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByCategory(views), nil
}

// GetThread returns a thread with all of its posts.
func (s *ThreadService) GetThread(ctx context.Context, id string) (domain.ThreadDetail, error) {
	view, err := s.Store.Threads().GetThreadByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.ThreadDetail{}, domain.ErrThreadNotFound
	case err != nil:
		return domain.ThreadDetail{}, dependency(ctx, "get thread", err)
	}

	posts, err := s.Store.Posts().ListPostsByThread(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, dependency(ctx, "list posts", err)
	}
	return domain.ThreadDetail{Thread: view, Posts: posts}, nil
}
