// Package sqlstore implements store.Store on top of database/sql through
// sqlx. The sqlite and postgres drivers share it and differ only in their
// Dialect, connection setup and migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/jmoiron/sqlx"
)

// Dialect captures the driver specific behaviour the shared repos need.
type Dialect struct {
	// Name is the sqlx driver name, which also selects the bind style.
	Name string

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(error) bool
}

// Migrator applies the driver's embedded migrations to db.
type Migrator func(db *sql.DB) error

type Store struct {
	db      *sqlx.DB
	dialect Dialect
	migrate Migrator
}

// New wraps an open connection pool.
func New(db *sql.DB, dialect Dialect, migrate Migrator) *Store {
	return &Store{
		db:      sqlx.NewDb(db, dialect.Name),
		dialect: dialect,
		migrate: migrate,
	}
}

// DB exposes the underlying pool for driver level setup and tests.
func (s *Store) DB() *sql.DB { return s.db.DB }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(s.db.DB)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users     { return &usersRepo{q: s.db, dialect: s.dialect} }
func (s *Store) Threads() store.Threads { return &threadsRepo{q: s.db} }
func (s *Store) Posts() store.Posts     { return &postsRepo{q: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// affected reports whether a write touched at least one row.
func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
