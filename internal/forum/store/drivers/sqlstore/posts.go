package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/jmoiron/sqlx"
)

const (
	// createPostQuery inserts only while the parent thread exists and is
	// unlocked, so the lock check and the write are one statement. The casts
	// give postgres a type for parameters in the select list.
	createPostQuery = `
INSERT INTO posts (id, thread_id, author_id, body, is_flagged, moderation_note, created_at, updated_at)
SELECT CAST(? AS TEXT), t.id, CAST(? AS TEXT), CAST(? AS TEXT), FALSE, '', CAST(? AS BIGINT), CAST(? AS BIGINT)
FROM threads t
WHERE t.id = ? AND t.is_locked = FALSE`

	threadLockStateQuery = `SELECT is_locked FROM threads WHERE id = ?`

	getPostQuery = `
SELECT id, thread_id, author_id, body, is_flagged, moderation_note, created_at, updated_at
FROM posts
WHERE id = ?`

	listPostsByThreadQuery = `
SELECT p.id, p.thread_id, p.author_id, p.body, p.is_flagged, p.moderation_note, p.created_at, p.updated_at,
       a.username AS author_username, a.role AS author_role
FROM posts p
JOIN users a ON a.id = p.author_id
WHERE p.thread_id = ?
ORDER BY p.created_at ASC, p.id ASC`

	// flagPostQuery keeps the first flag time so re-flagging does not reorder
	// the moderation queue.
	flagPostQuery = `
UPDATE posts
SET updated_at = CASE WHEN is_flagged THEN updated_at ELSE ? END,
    is_flagged = TRUE
WHERE id = ?`

	listFlaggedQuery = `
SELECT p.id, p.thread_id, p.author_id, p.body, p.is_flagged, p.moderation_note, p.created_at, p.updated_at,
       a.username AS author_username, a.role AS author_role,
       t.title AS thread_title, t.is_locked AS thread_is_locked
FROM posts p
JOIN users a ON a.id = p.author_id
JOIN threads t ON t.id = p.thread_id
WHERE p.is_flagged = TRUE
ORDER BY p.updated_at DESC, p.created_at DESC, p.id DESC`

	approvePostQuery = `UPDATE posts SET is_flagged = FALSE, moderation_note = ?, updated_at = ? WHERE id = ?`

	removePostQuery = `DELETE FROM posts WHERE id = ?`
)

type postsRepo struct {
	q sqlx.ExtContext
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	inserted, err := affected(r.q.ExecContext(ctx, r.q.Rebind(createPostQuery),
		p.ID,
		p.AuthorID,
		p.Body,
		toNanos(p.CreatedAt),
		toNanos(p.UpdatedAt),
		p.ThreadID,
	))
	if err != nil {
		return err
	}
	if inserted {
		return nil
	}

	// Nothing inserted: tell a missing thread apart from a locked one.
	var locked bool
	if err := sqlx.GetContext(ctx, r.q, &locked, r.q.Rebind(threadLockStateQuery), p.ThreadID); err != nil {
		return mapNotFound(err)
	}
	return store.ErrLocked
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	var row postRow
	if err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(getPostQuery), id); err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return mapPost(row), nil
}

func (r *postsRepo) ListPostsByThread(ctx context.Context, threadID string) ([]domain.PostView, error) {
	var rows []postViewRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(listPostsByThreadQuery), threadID); err != nil {
		return nil, err
	}

	posts := make([]domain.PostView, len(rows))
	for i, row := range rows {
		posts[i] = mapPostView(row)
	}
	return posts, nil
}

func (r *postsRepo) FlagPost(ctx context.Context, id string, now time.Time) (bool, error) {
	return affected(r.q.ExecContext(ctx, r.q.Rebind(flagPostQuery), toNanos(now), id))
}

func (r *postsRepo) ListFlaggedPosts(ctx context.Context) ([]domain.FlaggedView, error) {
	var rows []flaggedRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, listFlaggedQuery); err != nil {
		return nil, err
	}

	flagged := make([]domain.FlaggedView, len(rows))
	for i, row := range rows {
		flagged[i] = mapFlagged(row)
	}
	return flagged, nil
}

func (r *postsRepo) ApprovePost(ctx context.Context, id, note string, now time.Time) (bool, error) {
	return affected(r.q.ExecContext(ctx, r.q.Rebind(approvePostQuery), note, toNanos(now), id))
}

func (r *postsRepo) RemovePost(ctx context.Context, id string) (bool, error) {
	return affected(r.q.ExecContext(ctx, r.q.Rebind(removePostQuery), id))
}
