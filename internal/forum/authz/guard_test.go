package authz_test

import (
	"testing"

	"github.com/aussiebroadwan/forumhub/internal/forum/authz"
	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role          domain.Role
		authenticated bool
		moderator     bool
		super         bool
	}{
		{domain.RoleNone, false, false, false},
		{domain.RoleMember, true, false, false},
		{domain.RoleModerator, true, true, false},
		{domain.RoleSuper, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			require.Equal(t, tt.authenticated, authz.IsAuthenticated(tt.role))
			require.Equal(t, tt.moderator, authz.IsModerator(tt.role))
			require.Equal(t, tt.super, authz.IsSuper(tt.role))
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		err := authz.Check(domain.RoleNone, authz.Authenticated)
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
		require.ErrorIs(t, err, domain.ErrAuthorization)
	})

	t.Run("member cannot moderate", func(t *testing.T) {
		err := authz.Check(domain.RoleMember, authz.Moderator)
		require.ErrorIs(t, err, domain.ErrAuthorization)
		require.NotErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("moderator cannot manage roles", func(t *testing.T) {
		require.ErrorIs(t, authz.Check(domain.RoleModerator, authz.Super), domain.ErrAuthorization)
	})

	t.Run("super passes every requirement", func(t *testing.T) {
		for _, req := range []authz.Requirement{authz.Authenticated, authz.Moderator, authz.Super} {
			require.NoError(t, authz.Check(domain.RoleSuper, req))
		}
	})
}
