package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.users.Register(ctx, "  Alice ", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, domain.RoleMember, u.Role)

	t.Run("normalized duplicate", func(t *testing.T) {
		_, err := env.users.Register(ctx, "ALICE", "password123")
		require.ErrorIs(t, err, domain.ErrUsernameTaken)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("short username", func(t *testing.T) {
		_, err := env.users.Register(ctx, " ab ", "password123")
		require.ErrorIs(t, err, domain.ErrUsernameTooShort)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := env.users.Register(ctx, "bob", "12345")
		require.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	u, err := env.users.Authenticate(ctx, " Alice", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	_, err = env.users.Authenticate(ctx, "alice", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = env.users.Authenticate(ctx, "nobody", "password123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	require.ErrorIs(t, err, domain.ErrAuthorization)
}

func TestSessionRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	res, err := env.auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "alice", res.Actor.Username)
	require.True(t, env.clock.Now().Add(time.Hour).Equal(res.ExpiresAt))

	p, err := env.auth.Resolve(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, res.Actor, p.Actor)
	require.NotEmpty(t, p.SessionID)

	require.NoError(t, env.auth.Logout(ctx, p))

	_, err = env.auth.Resolve(ctx, res.Token)
	require.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionReloadsRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.actor(t, "alice", domain.RoleMember)
	res, err := env.auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, res.Actor.Role)

	_, err = env.store.Users().UpdateRole(ctx, alice.ID, domain.RoleModerator, env.clock.Now())
	require.NoError(t, err)

	p, err := env.auth.Resolve(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleModerator, p.Actor.Role)
}

func TestSessionResolveRejects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "alice", "password123")
	require.NoError(t, err)
	res, err := env.auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := env.auth.Resolve(ctx, "")
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := env.auth.Resolve(ctx, "not-a-jwt")
		require.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login(ctx, "alice", "nope-nope")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("expired", func(t *testing.T) {
		env.clock.Advance(2 * time.Hour)
		_, err := env.auth.Resolve(ctx, res.Token)
		require.ErrorIs(t, err, domain.ErrInvalidSession)
	})
}
