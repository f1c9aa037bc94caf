package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/idx"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Now    Clock
}

// Register creates a member account. Usernames are normalized before the
// uniqueness check, so "Alice" and " alice" collide.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.UserSummary, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate and normalize
	name, err := domain.ValidateRegistration(username, password)
	if err != nil {
		return domain.UserSummary{}, err
	}

	// 2. Hash credentials
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.UserSummary{}, err
	}

	// 3. Persist
	now := s.Now.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     name,
		PasswordHash: hash,
		Role:         domain.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.UserSummary{}, domain.ErrUsernameTaken
		}
		return domain.UserSummary{}, dependency(ctx, "create user", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID), slog.String("username", u.Username))
	return u.Summary(), nil
}

// Authenticate checks a username and password. Unknown usernames and wrong
// passwords return the same error after the same amount of hashing work.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.Hasher.VerifyDummy(password)
		return domain.User{}, domain.ErrInvalidCredentials
	case err != nil:
		return domain.User{}, dependency(ctx, "get user by username", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMalformedHash) {
			slogx.FromContext(ctx).Error("stored password hash is malformed",
				slog.String("user_id", u.ID),
				slog.Any("error", err),
			)
		}
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return u, nil
}

// GetUser loads a user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, domain.ErrUserNotFound
	case err != nil:
		return domain.User{}, dependency(ctx, "get user", err)
	}
	return u, nil
}
