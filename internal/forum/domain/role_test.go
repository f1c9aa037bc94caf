package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.Role
		ok   bool
	}{
		{"member", domain.RoleMember, true},
		{"Moderator", domain.RoleModerator, true},
		{"  super ", domain.RoleSuper, true},
		{"admin", domain.RoleNone, false},
		{"", domain.RoleNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseRole(tt.in)
			if !tt.ok {
				require.ErrorIs(t, err, domain.ErrInvalidRole)
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, must(domain.ParseRole(got.String())))
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	require.False(t, domain.RoleNone.Valid())
	require.False(t, domain.RoleNone.CanModerate())
	require.False(t, domain.RoleMember.CanModerate())
	require.True(t, domain.RoleModerator.CanModerate())
	require.False(t, domain.RoleModerator.CanManageRoles())
	require.True(t, domain.RoleSuper.CanModerate())
	require.True(t, domain.RoleSuper.CanManageRoles())
}

func TestRoleJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(struct {
		Role domain.Role `json:"role"`
	}{domain.RoleModerator})
	require.NoError(t, err)
	require.JSONEq(t, `{"role":"moderator"}`, string(out))

	var in struct {
		Role domain.Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"super"}`), &in))
	require.Equal(t, domain.RoleSuper, in.Role)

	require.Error(t, json.Unmarshal([]byte(`{"role":"owner"}`), &in))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
