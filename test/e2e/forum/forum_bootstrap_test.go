package forum_test

import (
	"testing"

	"github.com/aussiebroadwan/forumhub/pkg/forumsdk"
	"github.com/stretchr/testify/require"
)

func TestBootstrapOnlyOnce(t *testing.T) {
	baseURL, cleanup := setupForumContainer(t)
	defer cleanup()

	client := forumsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.Bootstrap(ctx, "wrong-token", forumsdk.BootstrapRequest{Username: adminUsername, Password: adminPassword})
	require.True(t, forumsdk.IsUnauthorized(err), "wrong token should be rejected, got %v", err)

	admin := bootstrapAdmin(t, client)
	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "super", me.Role)

	_, err = client.Bootstrap(ctx, bootstrapToken, forumsdk.BootstrapRequest{Username: "second", Password: adminPassword})
	require.True(t, forumsdk.IsConflict(err), "second bootstrap should conflict, got %v", err)
}

func TestRegisterLoginLogout(t *testing.T) {
	baseURL, cleanup := setupForumContainer(t)
	defer cleanup()

	client := forumsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := registerMember(t, client, "Alice")
	require.Equal(t, "alice", alice.User().Username)

	_, err := client.Register(ctx, "ALICE", memberPassword)
	require.True(t, forumsdk.IsConflict(err), "usernames are case-insensitive, got %v", err)

	_, err = client.Login(ctx, "alice", "wrong-password")
	require.True(t, forumsdk.IsUnauthorized(err))

	require.NoError(t, alice.Logout(ctx))
	_, err = alice.Me(ctx)
	require.True(t, forumsdk.IsUnauthorized(err), "revoked session should be rejected, got %v", err)
}
