package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/jmoiron/sqlx"
)

const (
	createUserQuery = `
INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

	selectUserColumns = `SELECT id, username, password_hash, role, created_at, updated_at FROM users`

	listUsersQuery = `
SELECT id, username, role, created_at, updated_at
FROM users
ORDER BY created_at ASC, id ASC`

	updateRoleQuery = `UPDATE users SET role = ?, updated_at = ? WHERE id = ?`

	countUsersQuery = `SELECT COUNT(*) FROM users`
)

type usersRepo struct {
	q       sqlx.ExtContext
	dialect Dialect
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if !u.Role.Valid() {
		return domain.ErrInvalidRole
	}
	_, err := r.q.ExecContext(ctx, r.q.Rebind(createUserQuery),
		u.ID,
		domain.NormalizeUsername(u.Username),
		u.PasswordHash,
		u.Role.String(),
		toNanos(u.CreatedAt),
		toNanos(u.UpdatedAt),
	)
	if err != nil && r.dialect.IsUniqueViolation != nil && r.dialect.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row, r.q.Rebind(selectUserColumns+` WHERE id = ?`), id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row,
		r.q.Rebind(selectUserColumns+` WHERE username = ?`),
		domain.NormalizeUsername(username),
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	var rows []userRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.UserSummary, len(rows))
	for i, row := range rows {
		users[i] = mapUserSummary(row)
	}
	return users, nil
}

func (r *usersRepo) UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) (bool, error) {
	if !role.Valid() {
		return false, domain.ErrInvalidRole
	}
	return affected(r.q.ExecContext(ctx, r.q.Rebind(updateRoleQuery), role.String(), toNanos(now), id))
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, countUsersQuery); err != nil {
		return 0, err
	}
	return n, nil
}
