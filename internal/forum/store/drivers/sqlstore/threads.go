package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/jmoiron/sqlx"
)

const (
	createThreadQuery = `
INSERT INTO threads (id, title, body, category, author_id, tags, is_locked, seed_post_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// threadViewSelect joins the author and aggregates posts. Callers append
	// an optional WHERE clause followed by threadViewGroup.
	threadViewSelect = `
SELECT t.id, t.title, t.body, t.category, t.tags, t.is_locked, t.created_at, t.updated_at,
       a.id AS author_id, a.username AS author_username, a.role AS author_role,
       COUNT(p.id) AS post_count,
       COALESCE(SUM(CASE WHEN p.id <> t.seed_post_id THEN 1 ELSE 0 END), 0) AS reply_count,
       COALESCE(MAX(p.created_at), 0) AS latest_post_at
FROM threads t
JOIN users a ON a.id = t.author_id
LEFT JOIN posts p ON p.thread_id = t.id`

	threadViewGroup = `
GROUP BY t.id, t.title, t.body, t.category, t.tags, t.is_locked, t.seed_post_id, t.created_at, t.updated_at,
         a.id, a.username, a.role`

	listThreadsQuery = threadViewSelect + threadViewGroup + `
ORDER BY t.updated_at DESC, t.id DESC`

	getThreadQuery = threadViewSelect + `
WHERE t.id = ?` + threadViewGroup

	setLockQuery = `UPDATE threads SET is_locked = ?, updated_at = ? WHERE id = ?`

	// touchActivityQuery never moves updated_at backwards.
	touchActivityQuery = `UPDATE threads SET updated_at = ? WHERE id = ? AND updated_at < ?`
)

type threadsRepo struct {
	q sqlx.ExtContext
}

func (r *threadsRepo) CreateThread(ctx context.Context, t domain.Thread) error {
	_, err := r.q.ExecContext(ctx, r.q.Rebind(createThreadQuery),
		t.ID,
		t.Title,
		t.Body,
		t.Category,
		t.AuthorID,
		joinTags(t.Tags),
		t.IsLocked,
		t.SeedPostID,
		toNanos(t.CreatedAt),
		toNanos(t.UpdatedAt),
	)
	return err
}

func (r *threadsRepo) ListThreadsWithMeta(ctx context.Context) ([]domain.ThreadView, error) {
	var rows []threadViewRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, listThreadsQuery); err != nil {
		return nil, err
	}

	views := make([]domain.ThreadView, len(rows))
	for i, row := range rows {
		views[i] = mapThreadView(row)
	}
	return views, nil
}

func (r *threadsRepo) GetThreadByID(ctx context.Context, id string) (domain.ThreadView, error) {
	var row threadViewRow
	if err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(getThreadQuery), id); err != nil {
		return domain.ThreadView{}, mapNotFound(err)
	}
	return mapThreadView(row), nil
}

func (r *threadsRepo) SetLock(ctx context.Context, id string, locked bool, now time.Time) (bool, error) {
	return affected(r.q.ExecContext(ctx, r.q.Rebind(setLockQuery), locked, toNanos(now), id))
}

func (r *threadsRepo) TouchActivity(ctx context.Context, id string, now time.Time) error {
	ts := toNanos(now)
	_, err := r.q.ExecContext(ctx, r.q.Rebind(touchActivityQuery), ts, id, ts)
	return err
}
