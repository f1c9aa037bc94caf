package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/forumhub/internal/forum/domain"
	"github.com/aussiebroadwan/forumhub/internal/forum/session"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/sqlite"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/sqlstore"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by every service in a testEnv.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	store    *sqlstore.Store
	sessions *session.MemoryStore
	clock    *testClock

	users      *UserService
	auth       *SessionService
	threads    *ThreadService
	posts      *PostService
	moderation *ModerationService
	bootstrap  *BootstrapService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewPasswordHasher("test-pepper")
	require.NoError(t, err)

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	clock := &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	verifier := jwtx.NewVerifierEdDSA(keys, "forumhub-test")
	verifier.Now = clock.Now

	sessions := session.NewMemoryStore()
	sessions.Now = clock.Now

	users := &UserService{Store: st, Hasher: hasher, Now: clock.Now}
	return &testEnv{
		store:    st,
		sessions: sessions,
		clock:    clock,
		users:    users,
		auth: &SessionService{
			Users:    users,
			Store:    st,
			Sessions: sessions,
			Signer:   signer,
			Verifier: verifier,
			Issuer:   "forumhub-test",
			TTL:      time.Hour,
			Now:      clock.Now,
		},
		threads:    &ThreadService{Store: st, Now: clock.Now},
		posts:      &PostService{Store: st, Now: clock.Now},
		moderation: &ModerationService{Store: st, Now: clock.Now},
		bootstrap:  &BootstrapService{Store: st, Hasher: hasher, Token: "bootstrap-secret", Now: clock.Now},
	}
}

// actor registers a user and promotes them directly in the store.
func (e *testEnv) actor(t *testing.T, username string, role domain.Role) domain.Actor {
	t.Helper()
	ctx := context.Background()

	u, err := e.users.Register(ctx, username, "password123")
	require.NoError(t, err)
	if role != domain.RoleMember {
		ok, err := e.store.Users().UpdateRole(ctx, u.ID, role, e.clock.Now())
		require.NoError(t, err)
		require.True(t, ok)
	}
	return domain.Actor{ID: u.ID, Username: u.Username, Role: role}
}

func (e *testEnv) thread(t *testing.T, author domain.Actor, title string) domain.ThreadView {
	t.Helper()

	v, err := e.threads.CreateThread(context.Background(), author, domain.ThreadInput{
		Title: title,
		Body:  "an opening post that is long enough",
	})
	require.NoError(t, err)
	return v
}

func TestClockDefaultsToUTC(t *testing.T) {
	var c Clock
	require.Equal(t, time.UTC, c.now().Location())

	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.FixedZone("AEST", 10*3600))
	c = func() time.Time { return fixed }
	require.Equal(t, time.UTC, c.now().Location())
	require.True(t, fixed.Equal(c.now()))
}
