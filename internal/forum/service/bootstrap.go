package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/idx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

var (
	ErrBootstrapDisabled = fmt.Errorf("%w: bootstrap is disabled", domain.ErrNotFound)
	ErrBootstrapToken    = fmt.Errorf("%w: invalid bootstrap token", domain.ErrUnauthenticated)
	ErrBootstrapDone     = fmt.Errorf("%w: users already exist", domain.ErrConflict)
)

// BootstrapService creates the first super user on an empty forum. It is
// the only way to obtain a super account without an existing one.
type BootstrapService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher

	// Token is the shared secret callers must present. Empty disables
	// bootstrap entirely.
	Token string

	Now Clock
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) Bootstrap(ctx context.Context, token, username, password string) (domain.UserSummary, error) {
	l := slogx.FromContext(ctx)

	// 1. Gate
	if !s.Enabled() {
		return domain.UserSummary{}, ErrBootstrapDisabled
	}
	if !cryptox.EqualTokens(token, s.Token) {
		l.Warn("bootstrap token rejected")
		return domain.UserSummary{}, ErrBootstrapToken
	}

	// 2. Validate
	name, err := domain.ValidateRegistration(username, password)
	if err != nil {
		return domain.UserSummary{}, err
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.UserSummary{}, err
	}

	// 3. Create only while the user table is empty
	now := s.Now.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     name,
		PasswordHash: hash,
		Role:         domain.RoleSuper,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Users().CountUsers(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrBootstrapDone
		}
		return tx.Users().CreateUser(ctx, u)
	})
	switch {
	case errors.Is(err, ErrBootstrapDone), errors.Is(err, store.ErrAlreadyExists):
		return domain.UserSummary{}, ErrBootstrapDone
	case err != nil:
		return domain.UserSummary{}, dependency(ctx, "bootstrap", err)
	}

	l.Info("super user bootstrapped", slog.String("user_id", u.ID), slog.String("username", u.Username))
	return u.Summary(), nil
}
