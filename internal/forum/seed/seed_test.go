package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/sqlite"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newSeeder(t *testing.T) *Seeder {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	hasher, err := cryptox.NewPasswordHasher("seed-test-pepper")
	require.NoError(t, err)

	return New(st, hasher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	s := newSeeder(t)

	report, err := s.Run(ctx, Options{
		Users:          4,
		Moderators:     1,
		Threads:        3,
		PostsPerThread: 2,
		FlagRatio:      1,
		LockRatio:      1,
		Seed:           42,
	})
	require.NoError(t, err)
	require.Equal(t, 4, report.Users)
	require.Equal(t, 3, report.Threads)
	require.Equal(t, 6, report.Posts)
	require.Equal(t, 6, report.Flags)
	require.Equal(t, 3, report.Locked)

	users, err := s.Store.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	roles := map[domain.Role]int{}
	for _, u := range users {
		roles[u.Role]++
	}
	require.Equal(t, 1, roles[domain.RoleSuper])
	require.Equal(t, 1, roles[domain.RoleModerator])
	require.Equal(t, 3, roles[domain.RoleMember])

	flagged, err := s.Store.Posts().ListFlaggedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, flagged, 6)

	threads, err := s.Store.Threads().ListThreadsWithMeta(ctx)
	require.NoError(t, err)
	for _, th := range threads {
		require.True(t, th.IsLocked)
		require.NotEmpty(t, th.Category)
	}
}

func TestSeederReusesAdmin(t *testing.T) {
	ctx := context.Background()
	s := newSeeder(t)

	opts := Options{Users: 1, Threads: 1, Seed: 7}
	_, err := s.Run(ctx, opts)
	require.NoError(t, err)

	opts.Seed = 8
	_, err = s.Run(ctx, opts)
	require.NoError(t, err)

	admin, err := s.Store.Users().GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuper, admin.Role)
}

func TestSeederRepromotesAdminOnly(t *testing.T) {
	ctx := context.Background()
	s := newSeeder(t)

	_, err := s.Run(ctx, Options{Users: 1, Seed: 3})
	require.NoError(t, err)

	admin, err := s.Store.Users().GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	_, err = s.Store.Users().UpdateRole(ctx, admin.ID, domain.RoleMember, admin.UpdatedAt)
	require.NoError(t, err)

	report, err := s.Run(ctx, Options{Seed: 4})
	require.NoError(t, err)
	require.Zero(t, report.Users)
	require.Zero(t, report.Threads)

	admin, err = s.Store.Users().GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSuper, admin.Role)
}
